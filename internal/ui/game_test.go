package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeKeys(t *testing.T, g Game, keys string) Game {
	t.Helper()
	m, _ := g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return m.(Game)
}

func enter(t *testing.T, g Game) (Game, tea.Cmd) {
	t.Helper()
	m, cmd := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m.(Game), cmd
}

func TestGameHintsUntilCorrect(t *testing.T) {
	g := NewGame(42, 1, 100)

	g, cmd := enter(t, typeKeys(t, g, "10"))
	assert.Nil(t, cmd)
	assert.Contains(t, g.View(), "Too low")

	g, cmd = enter(t, typeKeys(t, g, "90"))
	assert.Nil(t, cmd)
	assert.Contains(t, g.View(), "Too high")

	g, cmd = enter(t, typeKeys(t, g, "42"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, g.Won())
	assert.Equal(t, []Attempt{{10, "Too low"}, {90, "Too high"}, {42, "Correct"}}, g.Attempts())
	assert.Contains(t, g.View(), "Correct! 3 attempts.")
}

func TestGameInputEditing(t *testing.T) {
	g := typeKeys(t, NewGame(7, 1, 10), "1x2")
	assert.Equal(t, "12", g.input)

	m, _ := g.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	g = m.(Game)
	assert.Equal(t, "1", g.input)

	g, _ = enter(t, NewGame(7, 1, 10))
	assert.Empty(t, g.Attempts())
	assert.Contains(t, g.View(), "enter a whole number")
}

func TestGameQuit(t *testing.T) {
	m, cmd := NewGame(7, 1, 10).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.(Game).Won())
	assert.Contains(t, m.View(), "The number was 7.")
}

func TestPlayPlain(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("5\nabc\n9\n7\n")

	attempts, won, err := PlayPlain(context.Background(), in, &out, ProgramOptions{Secret: 7, Min: 1, Max: 10})
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, []Attempt{{5, "Too low"}, {9, "Too high"}, {7, "Correct"}}, attempts)
	assert.Contains(t, out.String(), "enter a whole number")
	assert.Contains(t, out.String(), "Correct! 3 attempts.")
}

func TestPlayPlainGivesUp(t *testing.T) {
	var out strings.Builder
	attempts, won, err := PlayPlain(context.Background(), strings.NewReader("3\nq\n"), &out, ProgramOptions{Secret: 7, Min: 1, Max: 10})
	require.NoError(t, err)
	assert.False(t, won)
	assert.Len(t, attempts, 1)
	assert.Contains(t, out.String(), "The number was 7.")

	_, won, err = PlayPlain(context.Background(), strings.NewReader(""), &out, ProgramOptions{Secret: 7, Min: 1, Max: 10})
	require.NoError(t, err)
	assert.False(t, won)
}
