package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/model"
)

func vehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Manage investment vehicle metadata",
	}

	cmd.AddCommand(listVehiclesCmd())
	cmd.AddCommand(seedVehiclesCmd())
	cmd.AddCommand(setVehicleCmd())

	return cmd
}

func listVehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List investment vehicles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vehicles, err := store.LoadInvestmentVehicles(ctx)
			if err != nil {
				return fmt.Errorf("failed to load vehicles: %w", err)
			}
			if len(vehicles) == 0 {
				vehicles = model.DefaultVehicles()
				fmt.Println(cli.SubtleStyle.Render("(showing built-in catalog; run 'seedling vehicles seed' to persist)"))
			}

			fmt.Print(cli.RenderVehicles(vehicles))
			return nil
		},
	}
}

func seedVehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Restore the built-in default vehicle catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveInvestmentVehicles(ctx, model.DefaultVehicles()); err != nil {
				return fmt.Errorf("failed to seed vehicles: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Seeded default vehicle catalog."))
			return nil
		},
	}
}

func setVehicleCmd() *cobra.Command {
	var (
		annualReturn float64
		volatility   float64
	)

	cmd := &cobra.Command{
		Use:   "set <vehicle-id>",
		Short: "Update a vehicle's return and volatility figures",
		Long: `Update market figures for one vehicle, the way a market-data refresh
would. The Sharpe ratio is recomputed from the new figures on save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vehicles, err := store.LoadInvestmentVehicles(ctx)
			if err != nil {
				return fmt.Errorf("failed to load vehicles: %w", err)
			}

			for i := range vehicles {
				if vehicles[i].ID != args[0] {
					continue
				}
				if cmd.Flags().Changed("return") {
					vehicles[i].AnnualizedReturn = annualReturn
				}
				if cmd.Flags().Changed("volatility") {
					vehicles[i].Volatility = volatility
				}
				if err := store.SaveInvestmentVehicles(ctx, vehicles[i:i+1]); err != nil {
					return fmt.Errorf("failed to save vehicle: %w", err)
				}
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated %s.", args[0])))
				return nil
			}

			return fmt.Errorf("vehicle %q not found", args[0])
		},
	}

	cmd.Flags().Float64Var(&annualReturn, "return", 0, "annualized return percent")
	cmd.Flags().Float64Var(&volatility, "volatility", 0, "volatility percent")

	return cmd
}
