package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/export"
	"github.com/spendview-dev/spendview/internal/importer"
	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/normalize"
	"github.com/spendview-dev/spendview/internal/session"
)

func newSubsCommand(verbose *bool) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "subs <file-or-dir>...",
		Short: "Normalize subscription exports of varying layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			reg := importer.DefaultRegistry()
			cache := session.New(reg)

			paths, err := expandPaths(reg, args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no loadable files found")
			}

			var all []model.SubscriptionRecord
			for _, path := range paths {
				recs, err := loadSubscriptions(cache, path, log)
				if err != nil {
					// Fatal for this file only; the batch keeps going.
					log.Error().Err(err).Str("file", path).Msg("skipping file")
					continue
				}
				all = append(all, recs...)
			}

			printSubsSummary(cmd.OutOrStdout(), all)

			if outPath != "" {
				if err := writeFile(outPath, func(f *os.File) error {
					return export.WriteSubscriptions(f, all)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(all), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write normalized CSV to this path")

	return cmd
}

// expandPaths resolves file and directory arguments into loadable files.
func expandPaths(reg *importer.Registry, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := reg.Scan(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}
	return paths, nil
}

func loadSubscriptions(cache *session.Cache, path string, log zerolog.Logger) ([]model.SubscriptionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rows, err := cache.Rows(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	return normalize.Subscriptions(rows, log)
}

// printSubsSummary renders total spend plus a per-vendor breakdown.
func printSubsSummary(w io.Writer, recs []model.SubscriptionRecord) {
	total := decimal.Zero
	byVendor := make(map[string]decimal.Decimal)
	months := make(map[string]bool)
	for _, r := range recs {
		total = total.Add(r.Amount)
		byVendor[r.Vendor] = byVendor[r.Vendor].Add(r.Amount)
		months[r.MonthYear.Format("2006-01")] = true
	}

	avg := decimal.Zero
	if len(months) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(months))))
	}

	vendors := make([]string, 0, len(byVendor))
	for v := range byVendor {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool {
		return byVendor[vendors[i]].GreaterThan(byVendor[vendors[j]])
	})

	fmt.Fprintf(w, "Records: %d  Total spend: %s  Avg monthly: %s  Vendors: %d\n",
		len(recs), total.StringFixed(2), avg.StringFixed(2), len(vendors))
	for i, v := range vendors {
		if i == 10 {
			fmt.Fprintf(w, "  ... and %d more\n", len(vendors)-10)
			break
		}
		fmt.Fprintf(w, "  %s: %s\n", v, byVendor[v].StringFixed(2))
	}
}
