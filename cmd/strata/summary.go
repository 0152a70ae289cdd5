package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/summary"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show overall and current-month totals with a category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			now := time.Now()
			fin := summary.Financial(store.Transactions(), now)

			var sb strings.Builder
			fmt.Fprintf(&sb, "Saldo total:     %s\n", cli.BoldStyle.Render(cli.FormatCurrency(fin.Balance)))
			fmt.Fprintf(&sb, "Receitas:        %s\n", cli.IncomeStyle.Render(cli.FormatCurrency(fin.TotalIncome)))
			fmt.Fprintf(&sb, "Despesas:        %s\n", cli.ExpenseStyle.Render(cli.FormatCurrency(fin.TotalExpenses)))
			fmt.Fprintf(&sb, "\n%s\n", cli.SubtleStyle.Render(now.Format("01/2006")))
			fmt.Fprintf(&sb, "Saldo do mês:    %s\n", cli.BoldStyle.Render(cli.FormatCurrency(fin.MonthlyBalance)))
			fmt.Fprintf(&sb, "Receitas do mês: %s\n", cli.IncomeStyle.Render(cli.FormatCurrency(fin.MonthlyIncome)))
			fmt.Fprintf(&sb, "Despesas do mês: %s", cli.ExpenseStyle.Render(cli.FormatCurrency(fin.MonthlyExpenses)))

			fmt.Println(cli.RenderBox(cli.MoneyIcon+" Resumo Financeiro", sb.String()))

			byCategory := summary.ByCategory(store.Transactions(), store.Categories())
			if len(byCategory) == 0 {
				return nil
			}

			fmt.Println(cli.FormatTitle(cli.ChartIcon + " Gastos por Categoria"))
			for _, cs := range byCategory {
				fmt.Printf("  %-20s %12s  %s\n",
					cs.Category,
					cli.FormatCurrency(cs.Amount),
					cli.SubtleStyle.Render(cli.FormatPercent(cs.Percentage)))
			}

			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			for _, cat := range store.Categories() {
				fmt.Printf("%s %-20s %s\n", cat.Icon, cat.Name, cli.SubtleStyle.Render(string(cat.Type)))
			}
			return nil
		},
	}
}
