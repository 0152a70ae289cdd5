package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/ledger"
	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Create savings goals ("caixinhas") and move money in and out of them.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(depositCmd())
	cmd.AddCommand(withdrawCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		name        string
		goalType    string
		target      float64
		deadlineStr string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var deadline *time.Time
			if deadlineStr != "" {
				parsed, err := time.Parse("2006-01-02", deadlineStr)
				if err != nil {
					return fmt.Errorf("invalid deadline %q (want YYYY-MM-DD): %w", deadlineStr, err)
				}
				deadline = &parsed
			}

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			goal, err := store.AddGoal(ctx, ledger.GoalInput{
				Name:         name,
				Type:         model.GoalType(goalType),
				TargetAmount: target,
				Deadline:     deadline,
			})
			if err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Meta criada: %s (alvo %s, id %s)",
				cli.GoalIcon, goal.Name, cli.FormatCurrency(goal.TargetAmount), goal.ID)))

			return refreshGamification(ctx, blobs, store)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "goal name (required)")
	cmd.Flags().StringVarP(&goalType, "type", "t", "accumulated", "goal type (monthly, accumulated)")
	cmd.Flags().Float64Var(&target, "target", 0, "target amount (required)")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "deadline as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			goals := store.Goals()
			if len(goals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma meta criada. Use 'strata goals add' para começar."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Meta"),
				cli.TableHeaderStyle.Render("Tipo"),
				cli.TableHeaderStyle.Render("Guardado"),
				cli.TableHeaderStyle.Render("Alvo"),
				cli.TableHeaderStyle.Render("Progresso"),
				cli.TableHeaderStyle.Render("ID"))

			for _, goal := range goals {
				progress := cli.FormatPercent(goal.Progress())
				if goal.Completed() {
					progress = cli.SuccessStyle.Render(progress + " " + cli.SuccessIcon)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					goal.Name,
					string(goal.Type),
					cli.FormatCurrency(goal.CurrentAmount),
					cli.FormatCurrency(goal.TargetAmount),
					progress,
					cli.SubtleStyle.Render(goal.ID))
			}

			return nil
		},
	}
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <goal-id> <amount>",
		Short: "Deposit money into a goal",
		Long: `Move money into a goal. The deposit is mirrored as an expense
transaction in the savings category, so the overall balance stays
consistent with the goal's saved amount.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount <= 0 {
				return fmt.Errorf("deposit amount must be positive, got %s", args[1])
			}

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			if err := store.DepositToGoal(ctx, args[0], amount); err != nil {
				return fmt.Errorf("failed to deposit: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Depósito de %s realizado.", cli.FormatCurrency(amount))))
			return refreshGamification(ctx, blobs, store)
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <goal-id> <amount>",
		Short: "Withdraw money from a goal",
		Long: `Move money out of a goal, mirrored as an income transaction.
Withdrawals above the goal's saved amount are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount <= 0 {
				return fmt.Errorf("withdrawal amount must be positive, got %s", args[1])
			}

			store, blobs, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = blobs.Close() }()

			if err := store.WithdrawFromGoal(ctx, args[0], amount); err != nil {
				return fmt.Errorf("failed to withdraw: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Retirada de %s realizada.", cli.FormatCurrency(amount))))
			return refreshGamification(ctx, blobs, store)
		},
	}
}
