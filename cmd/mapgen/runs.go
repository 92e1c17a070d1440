package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/render"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs"
)

var replayFrames string

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Print a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

var runsCmd = &cobra.Command{
	Use:   "runs <generator>",
	Short: "List stored runs of a generator",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuns,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	replayCmd.Flags().StringVar(&replayFrames, "frames", string(render.ModeAll), "frames to print (all, last)")
	replayCmd.Flags().BoolVar(&buildColor, "color", true, "print with 24-bit ANSI colors")
}

func requireRedis() error {
	if redisAddr == "" {
		return errors.InvalidArgument("--redis is required")
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}
	mode := render.Mode(replayFrames)
	if mode != render.ModeAll && mode != render.ModeLast {
		return errors.InvalidArgumentf("--frames must be one of %v", render.Modes())
	}

	svc, cleanup, err := newService(cmd.Context(), storeNone)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetRun(cmd.Context(), &mapgen.GetRunInput{RunID: args[0]})
	if err != nil {
		return err
	}
	return printRuns(cmd, []*runs.Run{out.Run}, mode, false)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}

	svc, cleanup, err := newService(cmd.Context(), storeNone)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListRuns(cmd.Context(), &mapgen.ListRunsInput{Generator: args[0]})
	if err != nil {
		return err
	}
	for _, id := range out.RunIDs {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}

	svc, cleanup, err := newService(cmd.Context(), storeNone)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.DeleteRun(cmd.Context(), &mapgen.DeleteRunInput{RunID: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s (%d frames)\n", args[0], out.FramesDeleted)
	return nil
}
