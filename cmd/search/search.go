// Package search handles filtering recorded expenses
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/models"
)

var (
	category string
	from     string
	to       string
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search expenses by text, category or date range",
	Long: `Search expenses by free text, category and date range. The text
arguments are matched against the category, the description and the
formatted amount of each expense. Results are ordered newest first.`,
	Args: cobra.ArbitraryArgs,
	RunE: searchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only expenses in this category")
	Cmd.Flags().StringVar(&from, "from", "", "Only expenses on or after this date")
	Cmd.Flags().StringVar(&to, "to", "", "Only expenses on or before this date")
}

func searchFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	filter := models.Filter{
		Text:                  strings.Join(args, " "),
		Category:              category,
		CaseSensitiveCategory: root.Cfg.Categorization.CaseSensitive,
	}
	if from != "" {
		date, err := models.ParseDate(from)
		if err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
		filter.From = date
	}
	if to != "" {
		date, err := models.ParseDate(to)
		if err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
		filter.To = date
	}

	expenses := l.Find(filter)
	if len(expenses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.ExpenseTable(fmt.Sprintf("Results (%d)", len(expenses)), expenses)))
	return nil
}
