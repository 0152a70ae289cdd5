package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/ledger"
	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and manage transactions",
		Long:  `Add, list, and remove income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(removeTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType      string
		amount      float64
		description string
		category    string
		dateStr     string
		goalID      string
		goalAmount  float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction. An income transaction can
allocate part of its amount to a goal with --goal and --goal-amount;
the allocation is mirrored as a savings expense.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			date := time.Now()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
				date = parsed
			}

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			txn, err := store.AddTransaction(ctx, ledger.TransactionInput{
				Type:        model.TransactionType(txType),
				Amount:      amount,
				Description: description,
				Category:    category,
				Date:        date,
				GoalID:      goalID,
				GoalAmount:  goalAmount,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			style := cli.AmountStyle(txn.Type == model.TypeIncome)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Registrado: %s %s (%s)",
				txn.Description, style.Render(cli.FormatCurrency(txn.Amount)), txn.Category)))

			return refreshGamification(ctx, blobs, store)
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&goalID, "goal", "", "goal id to allocate part of this income to")
	cmd.Flags().Float64Var(&goalAmount, "goal-amount", 0, "amount to allocate to the goal")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTxCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			txns := store.Transactions()
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma transação registrada. Use 'strata tx add' para começar."))
				return nil
			}
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Data"),
				cli.TableHeaderStyle.Render("Descrição"),
				cli.TableHeaderStyle.Render("Categoria"),
				cli.TableHeaderStyle.Render("Valor"),
				cli.TableHeaderStyle.Render("ID"))

			for _, txn := range txns {
				amount := cli.FormatCurrency(txn.Amount)
				if txn.Type == model.TypeExpense {
					amount = cli.ExpenseStyle.Render("-" + amount)
				} else {
					amount = cli.IncomeStyle.Render("+" + amount)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.FormatDate(txn.Date),
					txn.Description,
					txn.Category,
					amount,
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n transactions (0 = all)")
	return cmd
}

func removeTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <transaction-id>",
		Short: "Remove a transaction by id",
		Long: `Remove a transaction. Goal balances are not adjusted: deleting a
goal-linked transaction leaves the goal's saved amount as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			if err := store.RemoveTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Transação removida."))
			return refreshGamification(ctx, blobs, store)
		},
	}
}
