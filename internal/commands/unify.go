package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/export"
	"github.com/spendview-dev/spendview/internal/importer"
	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/normalize"
	"github.com/spendview-dev/spendview/internal/session"
	"github.com/spendview-dev/spendview/internal/table"
	"github.com/spendview-dev/spendview/internal/unify"
)

func newUnifyCommand(verbose *bool) *cobra.Command {
	var balancePath string
	var expensesPath string
	var outPath string
	var teamOnly bool

	cmd := &cobra.Command{
		Use:   "unify",
		Short: "Build the unified transaction table from balance and expense exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rows, err := buildUnified(balancePath, expensesPath, log)
			if err != nil {
				return err
			}

			if verrs := unify.Validate(rows); len(verrs) > 0 {
				for _, ve := range verrs {
					log.Warn().Msg(ve.Error())
				}
			}

			if teamOnly {
				rows = filterByKeywords(rows, cfg.Filters.SalesTeamKeywords)
			}

			unify.SortByTime(rows)
			printSummary(cmd.OutOrStdout(), rows)

			if outPath != "" {
				if err := writeFile(outPath, func(f *os.File) error {
					return export.WriteUnified(f, rows)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&balancePath, "balance", "", "balance activity export (required)")
	cmd.Flags().StringVar(&expensesPath, "expenses", "", "card expense export (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write unified CSV to this path")
	cmd.Flags().BoolVar(&teamOnly, "team", false, "keep only rows matching the configured sales-team keywords")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("expenses")

	return cmd
}

// buildUnified runs the full financial pipeline: load both exports,
// normalize per source, merge.
func buildUnified(balancePath, expensesPath string, log zerolog.Logger) ([]model.UnifiedTransaction, error) {
	cache := session.New(importer.DefaultRegistry())

	balTable, err := readHeadered(cache, balancePath)
	if err != nil {
		return nil, err
	}
	expTable, err := readHeadered(cache, expensesPath)
	if err != nil {
		return nil, err
	}

	balRows, err := normalize.Balance(balTable, log)
	if err != nil {
		return nil, err
	}
	cardRows, err := normalize.Card(expTable, log)
	if err != nil {
		return nil, err
	}

	return unify.Merge(cardRows, balRows), nil
}

// readHeadered loads a file whose first row is the header.
func readHeadered(cache *session.Cache, path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rows, err := cache.Rows(path, data)
	if err != nil {
		return nil, err
	}
	return table.FromHeaderRow(rows), nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

// filterByKeywords keeps rows whose counterparty contains any keyword,
// case-insensitively.
func filterByKeywords(rows []model.UnifiedTransaction, keywords []string) []model.UnifiedTransaction {
	if len(keywords) == 0 {
		return rows
	}
	var out []model.UnifiedTransaction
	for _, u := range rows {
		name := strings.ToLower(u.Counterparty)
		for _, k := range keywords {
			if k != "" && strings.Contains(name, strings.ToLower(k)) {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

// printSummary renders counts and sums by type plus the debit/credit
// totals. Aggregates live here in the presentation layer, not in the
// pipeline.
func printSummary(w io.Writer, rows []model.UnifiedTransaction) {
	type agg struct {
		count                 int
		amount, debit, credit decimal.Decimal
	}
	byType := make(map[model.TxnType]*agg)
	totalDebit, totalCredit := decimal.Zero, decimal.Zero

	for _, u := range rows {
		a := byType[u.Type]
		if a == nil {
			a = &agg{}
			byType[u.Type] = a
		}
		a.count++
		a.amount = a.amount.Add(u.Amount)
		a.debit = a.debit.Add(u.Debit)
		a.credit = a.credit.Add(u.Credit)
		totalDebit = totalDebit.Add(u.Debit)
		totalCredit = totalCredit.Add(u.Credit)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tCOUNT\tAMOUNT\tDEBIT\tCREDIT")
	for _, t := range types {
		a := byType[model.TxnType(t)]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", t, a.count, a.amount.StringFixed(2), a.debit.StringFixed(2), a.credit.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nRows: %d  Total debits: %s  Total credits: %s  Net: %s\n",
		len(rows), totalDebit.StringFixed(2), totalCredit.StringFixed(2), totalDebit.Sub(totalCredit).StringFixed(2))
}
