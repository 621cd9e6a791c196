package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/khoward/seedling/internal/cli"
	"github.com/khoward/seedling/internal/model"
)

func overridesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overrides",
		Short: "Manage classification overrides and category preferences",
	}

	cmd.AddCommand(listOverridesCmd())
	cmd.AddCommand(setOverrideCmd())
	cmd.AddCommand(deleteOverrideCmd())
	cmd.AddCommand(prefsCmd())

	return cmd
}

func listOverridesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List title overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			overrides, err := store.LoadOverrides(ctx, ownerID())
			if err != nil {
				return fmt.Errorf("failed to load overrides: %w", err)
			}
			if len(overrides) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No overrides recorded."))
				return nil
			}

			titles := make([]string, 0, len(overrides))
			for title := range overrides {
				titles = append(titles, title)
			}
			sort.Strings(titles)

			for _, title := range titles {
				fmt.Printf("  %-40s %s\n", title, renderNecessity(overrides[title]))
			}
			return nil
		},
	}
}

func setOverrideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <title> <necessary|discretionary>",
		Short: "Record a title override",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			necessary, err := parseNecessity(args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveOverride(ctx, ownerID(), args[0], necessary); err != nil {
				return fmt.Errorf("failed to save override: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Override saved: %q -> %s", args[0], args[1])))
			return nil
		},
	}
}

func deleteOverrideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a title override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteOverride(ctx, ownerID(), args[0]); err != nil {
				return fmt.Errorf("failed to delete override: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Override deleted: %q", args[0])))
			return nil
		},
	}
}

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage category-level necessity preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <category> <necessary|discretionary>",
		Short: "Override a category's necessity wholesale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category := model.Category(args[0])
			necessary, err := parseNecessity(args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveCategoryPreference(ctx, ownerID(), category, necessary); err != nil {
				return fmt.Errorf("failed to save preference: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Preference saved: %s -> %s", category, args[1])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List category preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			prefs, err := store.LoadCategoryPreferences(ctx, ownerID())
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}

			for _, info := range model.AllCategories() {
				necessity := info.DefaultNecessary
				source := "default"
				if override, ok := prefs[info.Name]; ok {
					necessity = override
					source = "preference"
				}
				fmt.Printf("  %-20s %-14s %s\n", info.DisplayName,
					renderNecessity(necessity), cli.SubtleStyle.Render(source))
			}
			return nil
		},
	})

	return cmd
}
