package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/rail44/kata/internal/log"
	"github.com/rail44/kata/internal/ui"
)

var (
	guessSecret int
	guessPlain  bool
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Play the number guessing game",
	Long: `Pick a secret number between guess_min and guess_max (1 and 100 unless
configured) and guess it with too-low / too-high hints.

An interactive screen is used in a terminal; otherwise guesses are read
line by line from standard input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := guessSecret
		if !cmd.Flags().Changed("secret") {
			secret = cfg.GuessMin + rand.IntN(cfg.GuessMax-cfg.GuessMin+1)
		}
		if secret < cfg.GuessMin || secret > cfg.GuessMax {
			return fmt.Errorf("secret %d is outside %d..%d", secret, cfg.GuessMin, cfg.GuessMax)
		}

		attempts, won, err := ui.Play(cmd.Context(), ui.ProgramOptions{
			Secret: secret,
			Min:    cfg.GuessMin,
			Max:    cfg.GuessMax,
			Plain:  guessPlain,
		})
		if err != nil {
			return err
		}
		log.Debug("game over", slog.Bool("won", won), slog.Int("attempts", len(attempts)))
		return nil
	},
}

func init() {
	guessCmd.Flags().IntVar(&guessSecret, "secret", 0, "use a fixed secret instead of a random one")
	guessCmd.Flags().BoolVar(&guessPlain, "plain", false, "use a line-based prompt even in a terminal")
	rootCmd.AddCommand(guessCmd)
}
