package main

import (
	"fmt"
	"os"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/export"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			blobs, err := initBlobStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			backup, err := export.Snapshot(ctx, blobs)
			if err != nil {
				return err
			}

			if output == "" {
				return backup.Write(os.Stdout)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := backup.Write(f); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Backup salvo em " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the backup to a file instead of stdout")
	return cmd
}

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Long: `Delete every transaction, goal, and achievement. The default
category catalog is reseeded on the next run. Requires --force.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Println(cli.FormatWarning("Isso apaga todos os dados. Use --force para confirmar."))
				return nil
			}

			blobs, err := initBlobStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			if err := export.Reset(ctx, blobs); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Todos os dados foram apagados."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the reset")
	return cmd
}
