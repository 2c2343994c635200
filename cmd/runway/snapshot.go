package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/config"
	"github.com/rpgo/runway-simulator/internal/output"
	"github.com/rpgo/runway-simulator/internal/snapshot"
	"github.com/rpgo/runway-simulator/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagSnapshotName     string
	flagSnapshotProposed bool
	flagSnapshotInto     string
)

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Aliases: []string{"snap"},
	Short:   "Save, list and compare parameter snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current path (or proposed strategy) as a snapshot",
	RunE:  runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotList,
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Print a snapshot's parameters, or write them into a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotLoad,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

var snapshotCompareCmd = &cobra.Command{
	Use:   "compare <id> <id>...",
	Short: "Compare snapshots against the first one",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSnapshotCompare,
}

func init() {
	snapshotSaveCmd.Flags().StringVarP(&flagSnapshotName, "name", "n", "", "Snapshot name (default \"Snapshot N\")")
	snapshotSaveCmd.Flags().BoolVar(&flagSnapshotProposed, "proposed", false, "Save the proposed strategy parameters instead of the current path")
	addParamFlags(snapshotSaveCmd)
	snapshotLoadCmd.Flags().StringVar(&flagSnapshotInto, "into", "", "Scenario file whose current path is replaced by the snapshot")

	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotListCmd, snapshotLoadCmd, snapshotDeleteCmd, snapshotCompareCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// withSnapshots opens the SQLite-backed store for the duration of fn.
func withSnapshots(ctx context.Context, horizon int, fn func(*snapshot.Store) error) error {
	db, err := store.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening snapshot db: %w", err)
	}
	defer db.Close()

	s, err := snapshot.Open(ctx, db,
		snapshot.WithEngine(engine, horizon),
		snapshot.WithLogger(engine.Logger),
	)
	if err != nil {
		return err
	}
	return fn(s)
}

// resolveID accepts a full id or a unique prefix of one.
func resolveID(s *snapshot.Store, ref string) (string, error) {
	if _, err := s.Get(ref); err == nil {
		return ref, nil
	}
	var matches []string
	for _, snap := range s.List() {
		if strings.HasPrefix(snap.ID, ref) {
			matches = append(matches, snap.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", snapshot.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("snapshot id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// hiresNotStoredNote is printed when a saved runway includes hire costs that
// the stored parameters cannot reproduce.
const hiresNotStoredNote = "  Note: runway and series include scheduled hires; the stored parameters do not, so re-simulating after `snapshot load` omits them."

func runSnapshotSave(cmd *cobra.Command, _ []string) error {
	cfg, err := scenarioWithOverrides(cmd)
	if err != nil {
		return err
	}

	params := cfg.Current
	var injector calculation.CostInjector
	if flagSnapshotProposed {
		proposed, ok, err := calculation.ResolveProposed(cfg)
		if err != nil {
			return err
		}
		if ok {
			params = proposed.Parameters
			if len(proposed.Hires) > 0 {
				injector = proposed.Hires
			}
		}
	}
	result := engine.Run(params, injector, cfg.EffectiveHorizon())

	return withSnapshots(cmd.Context(), cfg.EffectiveHorizon(), func(s *snapshot.Store) error {
		snap, err := s.Save(cmd.Context(), flagSnapshotName, params, result)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  Saved %q as %s (runway %s)\n",
			snap.Name, snap.ID, result.RunwayLabel())
		if injector != nil {
			fmt.Fprintln(out, hiresNotStoredNote)
		}
		return nil
	})
}

func runSnapshotList(cmd *cobra.Command, _ []string) error {
	return withSnapshots(cmd.Context(), horizonFor(0), func(s *snapshot.Store) error {
		out := cmd.OutOrStdout()
		snaps := s.List()
		if len(snaps) == 0 {
			fmt.Fprintln(out, "\n  No snapshots saved.")
			return nil
		}
		t := output.Table{
			Title:   fmt.Sprintf("Snapshots (%d)", len(snaps)),
			Headers: []string{"ID", "Name", "Saved", "Cash", "Net burn", "Runway", "Final cash"},
		}
		for _, snap := range snaps {
			t.Rows = append(t.Rows, []string{
				snap.ID,
				snap.Name,
				snap.Timestamp.Local().Format("2006-01-02 15:04"),
				output.FormatCompactCurrency(snap.Parameters.CashOnHand),
				output.FormatCompactCurrency(snap.Parameters.NetBurn()),
				fmt.Sprintf("%d mo", snap.RunwayMonths),
				output.FormatCompactCurrency(snap.Series.FinalCash()),
			})
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, output.RenderTable(t))
		return nil
	})
}

func runSnapshotLoad(cmd *cobra.Command, args []string) error {
	return withSnapshots(cmd.Context(), horizonFor(0), func(s *snapshot.Store) error {
		id, err := resolveID(s, args[0])
		if err != nil {
			return err
		}
		params, err := s.Load(id)
		if err != nil {
			return err
		}

		if flagSnapshotInto == "" {
			data, err := yaml.Marshal(map[string]any{"current": params})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(flagSnapshotInto)
		if err != nil {
			return err
		}
		cfg.Current = params
		if err := parser.SaveToFile(cfg, flagSnapshotInto); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Loaded snapshot %s into %s\n", id, flagSnapshotInto)
		return nil
	})
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	return withSnapshots(cmd.Context(), horizonFor(0), func(s *snapshot.Store) error {
		id, err := resolveID(s, args[0])
		if err != nil {
			return err
		}
		if err := s.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Deleted snapshot %s\n", id)
		return nil
	})
}

func runSnapshotCompare(cmd *cobra.Command, args []string) error {
	return withSnapshots(cmd.Context(), horizonFor(0), func(s *snapshot.Store) error {
		ids := make([]string, 0, len(args))
		for _, ref := range args {
			id, err := resolveID(s, ref)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		deltas, err := s.Compare(ids...)
		if err != nil {
			return err
		}

		t := output.Table{
			Title:   "Snapshot Comparison",
			Headers: []string{"Name", "Runway", "Δ runway", "Final cash", "Δ final cash"},
		}
		for _, d := range deltas {
			runwayDelta, cashDelta := "ref", "ref"
			if !d.IsReference {
				runwayDelta = fmt.Sprintf("%+d", d.RunwayDelta)
				cashDelta = output.FormatCurrency(d.FinalCashDelta)
			}
			t.Rows = append(t.Rows, []string{
				d.Name,
				fmt.Sprintf("%d mo", d.RunwayMonths),
				runwayDelta,
				output.FormatCurrency(d.FinalCash),
				cashDelta,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(t))
		return nil
	})
}
