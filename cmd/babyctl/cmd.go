package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"babylog/internal/domain"
)

// now returns the current wall-clock time in the canonical text form. Only
// the CLI reads the clock; the core works with the text it is given.
func now() string {
	return time.Now().Format(domain.TimestampLayout)
}

func SetupCommands(a *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "babyctl",
		Short:         "Track feedings, diapers and weight from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var babyName string
	rootCmd.PersistentFlags().StringVar(&babyName, "baby", "", "baby name to record or filter by")

	var (
		amountML float64
		minutes  int
		notes    string
		at       string
	)

	addCmd := &cobra.Command{
		Use:   "add [type]",
		Short: "Record a feeding (breast-left, breast-right, bottle, solid)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ml *float64
			if cmd.Flags().Changed("ml") {
				ml = &amountML
			}
			var min *int
			if cmd.Flags().Changed("min") {
				min = &minutes
			}
			id, err := a.feedings.Record(cmd.Context(), babyName, args[0], ml, min, notes, timestampOr(at))
			if err != nil {
				return err
			}
			if err := a.flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("recorded feeding %d\n", id)
			return nil
		},
	}
	addCmd.Flags().Float64Var(&amountML, "ml", 0, "amount in milliliters")
	addCmd.Flags().IntVar(&minutes, "min", 0, "duration in minutes")
	addCmd.Flags().StringVar(&notes, "notes", "", "free-form note")
	addCmd.Flags().StringVar(&at, "at", "", "timestamp (YYYY-MM-DDTHH:MM:SS), default now")

	var (
		diaperNotes string
		diaperAt    string
	)
	diaperCmd := &cobra.Command{
		Use:   "diaper [type]",
		Short: "Record a diaper event (urine, poop)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.dejections.Record(cmd.Context(), babyName, args[0], diaperNotes, timestampOr(diaperAt))
			if err != nil {
				return err
			}
			if err := a.flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("recorded diaper event %d\n", id)
			return nil
		},
	}
	diaperCmd.Flags().StringVar(&diaperNotes, "notes", "", "free-form note")
	diaperCmd.Flags().StringVar(&diaperAt, "at", "", "timestamp (YYYY-MM-DDTHH:MM:SS), default now")

	var (
		weighLB    bool
		weighNotes string
		weighAt    string
	)
	weighCmd := &cobra.Command{
		Use:   "weigh [value]",
		Short: "Record a weight measurement in kilograms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad weight %q: %w", args[0], err)
			}
			if weighLB {
				v = domain.ConvertWeight(v, "lb", "kg")
			}
			id, err := a.weights.Record(cmd.Context(), babyName, v, weighNotes, timestampOr(weighAt))
			if err != nil {
				return err
			}
			if err := a.flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("recorded weight %d\n", id)
			return nil
		},
	}
	weighCmd.Flags().BoolVar(&weighLB, "lb", false, "value is in pounds")
	weighCmd.Flags().StringVar(&weighNotes, "notes", "", "free-form note")
	weighCmd.Flags().StringVar(&weighAt, "at", "", "timestamp (YYYY-MM-DDTHH:MM:SS), default now")

	var listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List feedings, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := domain.NoLimit
			if cmd.Flags().Changed("limit") {
				limit = listLimit
			}
			feedings, err := a.feedings.ListRecent(cmd.Context(), babyName, limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tTYPE\tML\tMIN\tNOTES")
			for _, f := range feedings {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					f.ID, f.Timestamp, f.Type,
					optFloat(f.AmountML), optInt(f.DurationMinutes), f.Notes)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of entries")

	timelineCmd := &cobra.Command{
		Use:   "timeline [date]",
		Short: "Show one day's entries of every kind, in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.reports.Timeline(cmd.Context(), babyName, args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tKIND\tDETAIL\tNOTES")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.Kind, timelineDetail(e), e.Notes)
			}
			return w.Flush()
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [period]",
		Short: "Aggregate a day (YYYY-MM-DD) or everything since an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := a.reports.Summary(cmd.Context(), babyName, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("feedings: %d (%.0f ml, %d min)\n", sum.TotalFeedings, sum.TotalML, sum.TotalMinutes)
			for _, tc := range sum.ByType {
				fmt.Printf("  %s: %d\n", tc.Type, tc.Count)
			}
			fmt.Printf("diapers: %d urine, %d poop\n", sum.TotalUrine, sum.TotalPoop)
			if sum.LatestWeightKG != nil {
				fmt.Printf("weight: %.3f kg\n", *sum.LatestWeightKG)
			}
			return nil
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report [start] [end]",
		Short: "Per-day summaries for [start, end)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.reports.Report(cmd.Context(), babyName, args[0], args[1])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tFEEDS\tML\tMIN\tURINE\tPOOP\tKG")
			for _, d := range days {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%d\t%s\n",
					d.Date, d.TotalFeedings,
					optFloat(d.TotalML), optInt(d.TotalMinutes),
					d.TotalUrine, d.TotalPoop, optFloat(d.WeightKG))
			}
			return w.Flush()
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [kind] [id]",
		Short: "Delete a feeding, dejection or weight entry by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("bad id %q: %w", args[1], err)
			}
			switch strings.ToLower(args[0]) {
			case domain.KindFeeding:
				err = a.feedings.Delete(cmd.Context(), id)
			case domain.KindDejection, "diaper":
				err = a.dejections.Delete(cmd.Context(), id)
			case domain.KindWeight:
				err = a.weights.Delete(cmd.Context(), id)
			default:
				return fmt.Errorf("unknown kind %q, want feeding, dejection or weight", args[0])
			}
			if err != nil {
				return err
			}
			if err := a.flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("deleted %s %d\n", args[0], id)
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the ledger snapshot to a file, or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := a.snapshots.Export(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = os.Stdout.Write(blob)
				return err
			}
			return os.WriteFile(args[0], blob, 0o644)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the ledger with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := a.snapshots.Import(cmd.Context(), blob); err != nil {
				return err
			}
			fmt.Println("imported")
			return nil
		},
	}

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(diaperCmd)
	rootCmd.AddCommand(weighCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	return rootCmd
}

func timestampOr(at string) string {
	if at != "" {
		return at
	}
	return now()
}

func timelineDetail(e domain.TimelineEntry) string {
	var parts []string
	if e.Subtype != "" {
		parts = append(parts, e.Subtype)
	}
	if e.AmountML != nil {
		parts = append(parts, fmt.Sprintf("%.0f ml", *e.AmountML))
	}
	if e.DurationMinutes != nil {
		parts = append(parts, fmt.Sprintf("%d min", *e.DurationMinutes))
	}
	if e.WeightKG != nil {
		parts = append(parts, fmt.Sprintf("%.3f kg", *e.WeightKG))
	}
	return strings.Join(parts, " ")
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
