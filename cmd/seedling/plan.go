package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/plan"
)

func planCmd() *cobra.Command {
	var (
		monthly  float64
		percent  float64
		risk     string
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a savings-and-investment plan",
		Long: `Build a full plan: aggregate the window, compute savings potential,
derive a monthly target (explicit --monthly or a --percent savings scenario),
and allocate it across risk-ranked investment vehicles with projections at
1, 5, 10, and 20 years.`,
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

			result, err := plan.New(store).Build(ctx, plan.Request{
				OwnerID:        ownerID(),
				Window:         window,
				RiskTolerance:  model.RiskTolerance(risk),
				MonthlyTarget:  monthly,
				SavingsPercent: percent,
			})
			if err != nil {
				return err
			}

			fmt.Print(cli.RenderPlan(result))

			return nil
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 0, "explicit monthly investment target (overrides --percent)")
	cmd.Flags().Float64Var(&percent, "percent", 50, "savings scenario percent used to derive the target")
	cmd.Flags().StringVar(&risk, "risk", "moderate", "risk tolerance (conservative, moderate, aggressive)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "window end (YYYY-MM-DD)")

	return cmd
}
