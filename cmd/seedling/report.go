package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/aggregate"
	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/savings"
)

func reportCmd() *cobra.Command {
	var (
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending totals and savings potential for a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			window, err := resolveWindow(fromFlag, toFlag)
			if err != nil {
				return err
			}

			transactions, err := store.GetTransactions(ctx, ownerID(), window)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			prefs, err := store.LoadCategoryPreferences(ctx, ownerID())
			if err != nil {
				// Preferences are an enhancement, not a requirement.
				prefs = nil
			}

			summary, err := aggregate.Aggregate(transactions, window, prefs)
			if err != nil {
				return err
			}

			report := savings.NewCalculator(nil).Calculate(summary.Discretionary)

			fmt.Print(cli.RenderSummary(summary))
			fmt.Println()
			fmt.Print(cli.RenderReport(report))

			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "window end (YYYY-MM-DD)")

	return cmd
}
