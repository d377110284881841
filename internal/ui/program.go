package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rail44/kata/exercise"
)

// ProgramOptions contains options for running the guessing game
type ProgramOptions struct {
	Secret   int
	Min, Max int
	Plain    bool // Use a line-based prompt instead of the TUI
}

// IsTerminal reports whether both stdin and stdout are attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Play runs the guessing game and returns the attempts made. The TUI is used
// only when attached to a terminal and not in plain mode.
func Play(ctx context.Context, opts ProgramOptions) ([]Attempt, bool, error) {
	if opts.Plain || !IsTerminal() {
		return PlayPlain(ctx, os.Stdin, os.Stdout, opts)
	}

	p := tea.NewProgram(NewGame(opts.Secret, opts.Min, opts.Max), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	game := final.(Game)
	return game.Attempts(), game.Won(), nil
}

// PlayPlain runs the game over a line-oriented reader and writer
func PlayPlain(ctx context.Context, r io.Reader, w io.Writer, opts ProgramOptions) ([]Attempt, bool, error) {
	fmt.Fprintf(w, "Guess the number between %d and %d\n", opts.Min, opts.Max)

	var attempts []Attempt
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return attempts, false, err
		}
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintf(w, "\nThe number was %d.\n", opts.Secret)
			return attempts, false, scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			fmt.Fprintf(w, "The number was %d.\n", opts.Secret)
			return attempts, false, nil
		}
		guess, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(w, "enter a whole number")
			continue
		}

		hint := exercise.GuessHint(opts.Secret, guess)
		attempts = append(attempts, Attempt{Guess: guess, Hint: hint})
		if exercise.NumberGuessingGame(opts.Secret, guess) == exercise.Correct {
			fmt.Fprintf(w, "%s! %d attempts.\n", exercise.Correct, len(attempts))
			return attempts, true, nil
		}
		fmt.Fprintln(w, hint)
	}
}
