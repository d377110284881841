package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/kata/exercise"
)

// maxInputLen bounds the typed number, sign included.
const maxInputLen = 12

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Attempt is one submitted guess and the hint it earned
type Attempt struct {
	Guess int
	Hint  string
}

// Game is the Bubble Tea model of the number guessing game
type Game struct {
	secret    int
	low, high int

	input    string
	message  string
	attempts []Attempt
	won      bool
	quit     bool
}

// NewGame creates a game whose secret lies in [low, high]
func NewGame(secret, low, high int) Game {
	return Game{
		secret: secret,
		low:    low,
		high:   high,
	}
}

// Won reports whether the secret was guessed
func (g Game) Won() bool {
	return g.won
}

// Attempts returns the guesses submitted so far
func (g Game) Attempts() []Attempt {
	return append([]Attempt(nil), g.attempts...)
}

// Init implements tea.Model
func (g Game) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (g Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		g.quit = true
		return g, tea.Quit
	case tea.KeyEnter:
		return g.submit()
	case tea.KeyBackspace:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
		return g, nil
	case tea.KeyRunes:
		for _, r := range key.Runes {
			switch {
			case r == 'q':
				g.quit = true
				return g, tea.Quit
			case r == '-' && g.input == "", r >= '0' && r <= '9':
				if len(g.input) < maxInputLen {
					g.input += string(r)
				}
			}
		}
	}
	return g, nil
}

func (g Game) submit() (tea.Model, tea.Cmd) {
	guess, err := strconv.Atoi(g.input)
	g.input = ""
	if err != nil {
		g.message = "enter a whole number"
		return g, nil
	}

	attempt := Attempt{Guess: guess, Hint: exercise.GuessHint(g.secret, guess)}
	g.attempts = append(g.attempts, attempt)
	g.message = ""

	if exercise.NumberGuessingGame(g.secret, guess) == exercise.Correct {
		g.won = true
		return g, tea.Quit
	}
	return g, nil
}

// View renders the UI
func (g Game) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(fmt.Sprintf("Guess the number between %d and %d", g.low, g.high)))
	s.WriteString("\n")

	for _, a := range g.attempts {
		s.WriteString(historyStyle.Render(fmt.Sprintf("  %d: %s", a.Guess, a.Hint)))
		s.WriteString("\n")
	}

	switch {
	case g.won:
		s.WriteString(successStyle.Render(fmt.Sprintf("%s! %d attempts.", exercise.Correct, len(g.attempts))))
		s.WriteString("\n")
		return s.String()
	case g.quit:
		s.WriteString(fmt.Sprintf("The number was %d.\n", g.secret))
		return s.String()
	}

	if g.message != "" {
		s.WriteString(errorStyle.Render(g.message))
		s.WriteString("\n")
	} else if n := len(g.attempts); n > 0 {
		s.WriteString(hintStyle.Render(g.attempts[n-1].Hint))
		s.WriteString("\n")
	}

	s.WriteString("> " + g.input)
	s.WriteString("\n\n")
	s.WriteString(historyStyle.Render("enter: submit • q/esc: quit"))
	return s.String()
}
