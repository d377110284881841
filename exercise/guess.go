package exercise

// Results of a guess.
const (
	Correct   = "Correct"
	Incorrect = "Incorrect"
	TooLow    = "Too low"
	TooHigh   = "Too high"
)

// NumberGuessingGame returns Correct when guess equals secret, Incorrect otherwise.
func NumberGuessingGame(secret, guess int) string {
	if guess == secret {
		return Correct
	}
	return Incorrect
}

// GuessHint returns Correct, TooLow or TooHigh for guess against secret.
func GuessHint(secret, guess int) string {
	switch {
	case guess < secret:
		return TooLow
	case guess > secret:
		return TooHigh
	default:
		return Correct
	}
}
