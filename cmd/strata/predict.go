package main

import (
	"fmt"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/KayanRoberto/strata-cashflow/internal/prediction"
	"github.com/spf13/cobra"
)

func predictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Forecast balance, goal completion, and spending trends",
		Long: `Project the balance three months ahead from recent activity, estimate
when each goal will be completed, and flag expense spikes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			predictions := prediction.Predict(store.Transactions(), store.Goals(), time.Now())

			fmt.Println(cli.FormatTitle(cli.ChartIcon + " Previsões"))
			for _, pred := range predictions {
				fmt.Printf("%s %s\n", priorityMarker(pred.Priority), cli.BoldStyle.Render(pred.Title))
				fmt.Printf("  %s\n", pred.Description)
				fmt.Printf("  %s\n\n", cli.SubtleStyle.Render("confiança: "+string(pred.Confidence)))
			}

			return nil
		},
	}
}

func priorityMarker(priority model.Rating) string {
	switch priority {
	case model.RatingHigh:
		return cli.ExpenseStyle.Render("●")
	case model.RatingMedium:
		return cli.WarningStyle.Render("●")
	default:
		return cli.SubtleStyle.Render("●")
	}
}
