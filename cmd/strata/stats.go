package main

import (
	"fmt"
	"strings"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/gamification"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show level, experience, and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			engine, err := gamification.NewEngine(ctx, blobs)
			if err != nil {
				return err
			}
			if _, err := engine.Evaluate(ctx, store.Transactions(), store.Goals()); err != nil {
				return err
			}

			stats := engine.Stats()

			var sb strings.Builder
			fmt.Fprintf(&sb, "Nível %s\n", cli.BoldStyle.Render(fmt.Sprintf("%d", stats.Level)))
			fmt.Fprintf(&sb, "Experiência:  %d (faltam %d para o próximo nível)\n", stats.Experience, stats.ExperienceToNext)
			fmt.Fprintf(&sb, "Transações:   %d\n", stats.TotalTransactions)
			fmt.Fprintf(&sb, "Metas completas: %d\n", stats.GoalsCompleted)
			fmt.Fprintf(&sb, "Sequência poupando: %d\n", stats.SavingsStreak)
			fmt.Fprintf(&sb, "Total economizado: %s", cli.FormatCurrency(stats.TotalSaved))

			fmt.Println(cli.RenderBox(cli.TrophyIcon+" Seu Progresso", sb.String()))

			achievements := engine.Achievements()
			if !showAll {
				achievements = engine.Recent()
				if len(achievements) == 0 {
					fmt.Println(cli.SubtleStyle.Render("Nenhuma conquista desbloqueada ainda."))
					return nil
				}
				fmt.Println(cli.FormatTitle("Conquistas recentes"))
			} else {
				fmt.Println(cli.FormatTitle("Conquistas"))
			}

			for _, ach := range achievements {
				status := cli.SubtleStyle.Render("bloqueada")
				if ach.IsUnlocked {
					status = cli.SuccessStyle.Render("desbloqueada " + cli.FormatDate(*ach.UnlockedAt))
				}
				fmt.Printf("  %s %-25s %s  %s\n", ach.Icon, ach.Title, cli.SubtleStyle.Render(string(ach.Tier)), status)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "show the full achievement catalog, locked included")
	return cmd
}
