//go:build ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/playback/viewer"
)

var (
	viewSeed  int64
	viewScale int
	viewNoise string
)

var viewCmd = &cobra.Command{
	Use:   "view <generator>",
	Short: "Play a generator's frames in a window",
	Long: `Play a generator's frames in a window. Enter or Space advances, and the
window closes after the last frame.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().Int64Var(&viewSeed, "seed", 0, "seed for the random source")
	viewCmd.Flags().IntVar(&viewScale, "scale", viewer.DefaultScale, "pixels per cell")
	viewCmd.Flags().StringVar(&viewNoise, "noise", noise.BasisSimplex.String(), "noise basis for terrain generators (simplex, perlin)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	basis, err := noise.ParseBasis(viewNoise)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(cmd.Context(), storeNone)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Generate(cmd.Context(), &mapgen.GenerateInput{
		Generator: args[0],
		Seed:      viewSeed,
		HasSeed:   cmd.Flags().Changed("seed"),
		Noise:     basis,
	})
	if err != nil {
		return err
	}

	return viewer.Run(&viewer.Config{
		Frames: out.Run.Frames,
		Scale:  viewScale,
		Title:  fmt.Sprintf("mapgen - %s (seed %d)", out.Run.Generator, out.Run.Seed),
	})
}
