package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/plan"
)

func addCmd() *cobra.Command {
	var (
		amount   float64
		category string
		dateFlag string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Log an expense",
		Long: `Log a new expense. The necessity flag is assigned automatically by the
classifier; correct it later with 'seedling classify --set' and the
correction will stick for that title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := time.Now()
			if dateFlag != "" {
				parsed, err := time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateFlag, err)
				}
				date = parsed
			}

			txn := model.Transaction{
				Title:    args[0],
				Amount:   amount,
				Date:     date,
				Category: model.Category(category),
				Notes:    notes,
				OwnerID:  ownerID(),
			}
			if err := txn.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			classifier := plan.New(store).NewClassifier(ctx, ownerID())
			txn.IsNecessary = classifier.ClassifyTransaction(txn)

			if err := store.SaveTransactions(ctx, []model.Transaction{txn}); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return common.NewUserError(
						fmt.Sprintf("%q looks like an expense you already logged for %s",
							txn.Title, txn.Date.Format("2006-01-02")), err)
				}
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Printf("%s %s (%s): %s\n",
				cli.SuccessStyle.Render("Logged"), txn.Title,
				cli.Money(txn.Amount), renderNecessity(txn.IsNecessary))

			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount (required)")
	cmd.Flags().StringVar(&category, "category", "other", "expense category")
	cmd.Flags().StringVar(&dateFlag, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
