package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/plan"
)

func classifyCmd() *cobra.Command {
	var (
		title    string
		amount   float64
		category string
		setFlag  string
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify expenses as necessary or discretionary",
		Long: `Classify transactions in a window, or a single ad-hoc expense given
--title, --amount, and --category. Use --set necessary|discretionary to record
a manual override for the title; overrides win all future classifications.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			planner := plan.New(store)
			classifier := planner.NewClassifier(ctx, ownerID())

			// Manual override path.
			if setFlag != "" {
				if title == "" {
					return fmt.Errorf("--set requires --title")
				}
				necessary, err := parseNecessity(setFlag)
				if err != nil {
					return err
				}
				classifier.RecordOverride(ctx, title, necessary)
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded override: %q -> %s", title, setFlag)))
				return nil
			}

			// Ad-hoc classification path.
			if title != "" {
				necessary := classifier.Classify(title, amount, model.Category(category))
				fmt.Printf("%s (%s, %s): %s\n",
					title, cli.Money(amount), category, renderNecessity(necessary))
				return nil
			}

			// Window path: classify stored transactions.
			window, err := resolveWindow(fromFlag, toFlag)
			if err != nil {
				return err
			}
			transactions, err := store.GetTransactions(ctx, ownerID(), window)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions in window."))
				return nil
			}

			for _, txn := range transactions {
				necessary := classifier.ClassifyTransaction(txn)
				marker := " "
				if necessary != txn.IsNecessary {
					marker = "*"
					if err := store.UpdateTransactionNecessity(ctx, txn.ID, necessary); err != nil {
						return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
					}
				}
				fmt.Printf("%s %-30s %10s  %-15s %s\n",
					marker, txn.Title, cli.Money(txn.Amount), txn.Category, renderNecessity(necessary))
			}
			fmt.Println(cli.SubtleStyle.Render("* flag changed and was saved"))

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "expense title")
	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount")
	cmd.Flags().StringVar(&category, "category", "other", "expense category")
	cmd.Flags().StringVar(&setFlag, "set", "", "record a manual override (necessary|discretionary)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "window end (YYYY-MM-DD)")

	return cmd
}

func parseNecessity(s string) (bool, error) {
	switch s {
	case "necessary":
		return true, nil
	case "discretionary":
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("invalid necessity %q: want necessary or discretionary", s)
}

func renderNecessity(necessary bool) string {
	if necessary {
		return cli.SuccessStyle.Render("necessary")
	}
	return cli.WarningStyle.Render("discretionary")
}
