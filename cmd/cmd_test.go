package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default so
// each execution parses from a clean slate.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--format", "text", "run", "sum", "1,2", "3", "4"}, "10\n"},
		{[]string{"--format", "text", "run", "dedupe", "1", "1", "2", "3", "3"}, "1 2 3\n"},
		{[]string{"--format", "text", "run", "maxmin", "-5", "3"}, "3 -5\n"},
		{[]string{"--format", "text", "--ignore-case=false", "run", "vowels", "HELLO"}, "0\n"},
		{[]string{"--format", "text", "--ignore-case", "run", "vowels", "HELLO"}, "2\n"},
		{[]string{"--format", "json", "run", "guess", "50", "50"}, "{\n  \"exercise\": \"guess\",\n  \"args\": [\n    \"50\",\n    \"50\"\n  ],\n  \"value\": \"Correct\"\n}\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	out, err := execute(t, "--ignore-case", "--format", "json", "run", "vowels", "HELLO")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": 2`)

	out, err = execute(t, "run", "vowels", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	assert.False(t, cfg.IgnoreCase)
	assert.Equal(t, "text", cfg.Format)
}

func TestGuessRangeFromEnvironment(t *testing.T) {
	t.Setenv("KATA_GUESS_MIN", "10")
	t.Setenv("KATA_GUESS_MAX", "20")
	require.NoError(t, loadConfig(rootCmd, nil))
	assert.Equal(t, 10, cfg.GuessMin)
	assert.Equal(t, 20, cfg.GuessMax)

	t.Setenv("KATA_GUESS_MAX", "5")
	assert.ErrorContains(t, loadConfig(rootCmd, nil), "greater than guess_max")

	t.Setenv("KATA_GUESS_MAX", "lots")
	assert.ErrorContains(t, loadConfig(rootCmd, nil), "invalid guess-max")
}

func TestRunCommandErrors(t *testing.T) {
	_, err := execute(t, "--format", "text", "run", "factorial", "-1")
	assert.ErrorContains(t, err, "invalid argument")

	_, err = execute(t, "--format", "text", "run", "nope")
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "--format", "xml", "run", "sum", "1")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFizzBuzzCommand(t *testing.T) {
	out, err := execute(t, "--format", "text", "fizzbuzz")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 100)
	assert.Equal(t, "FizzBuzz", lines[14])
	assert.Equal(t, "Buzz", lines[99])
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "--format", "text", "list")
	require.NoError(t, err)
	for _, name := range []string{"fizzbuzz", "sum", "dedupe", "palindrome", "vowels", "anagram", "maxmin", "factorial", "fibonacci", "guess"} {
		assert.Contains(t, out, "kata run "+name)
	}
}
