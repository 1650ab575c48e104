package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/export"
	"github.com/spendview-dev/spendview/internal/importer"
	"github.com/spendview-dev/spendview/internal/reconcile"
	"github.com/spendview-dev/spendview/internal/session"
	"github.com/spendview-dev/spendview/internal/table"
)

func newDiffCommand(verbose *bool) *cobra.Command {
	var outDir string
	var againstUnified bool

	cmd := &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Find transactions present in one export but missing from another",
		Long: "Compares transaction ids across two export files and reports rows present\n" +
			"in one but missing in the other. With --unified, the two files are taken as\n" +
			"the balance and expense exports and each is compared against the unified\n" +
			"table built from them.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			cache := session.New(importer.DefaultRegistry())

			aTable, err := readHeadered(cache, args[0])
			if err != nil {
				return err
			}
			bTable, err := readHeadered(cache, args[1])
			if err != nil {
				return err
			}

			nameA := baseName(args[0])
			nameB := baseName(args[1])

			if againstUnified {
				rows, err := buildUnified(args[0], args[1], log)
				if err != nil {
					return err
				}
				unified := export.ToTable(rows)
				if err := reportDiff(cmd, aTable, unified, nameA, "unified", outDir); err != nil {
					return err
				}
				return reportDiff(cmd, bTable, unified, nameB, "unified", outDir)
			}

			return reportDiff(cmd, aTable, bTable, nameA, nameB, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "write the missing-row CSVs into this directory")
	cmd.Flags().BoolVar(&againstUnified, "unified", false, "treat the files as balance and expense exports and compare each against the unified table")

	return cmd
}

func reportDiff(cmd *cobra.Command, a, b *table.Table, nameA, nameB, outDir string) error {
	res := reconcile.Diff(a, b)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Present in %s but missing in %s: %d\n", nameA, nameB, res.AOnly.Len())
	fmt.Fprintf(w, "Present in %s but missing in %s: %d\n", nameB, nameA, res.BOnly.Len())

	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	if err := writeDiffSide(outDir, nameA, nameB, res.AOnly); err != nil {
		return err
	}
	return writeDiffSide(outDir, nameB, nameA, res.BOnly)
}

func writeDiffSide(outDir, name, other string, t *table.Table) error {
	if t.Len() == 0 {
		return nil
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s_only_vs_%s.csv", name, other))
	return writeFile(path, func(f *os.File) error {
		return export.WriteTable(f, t)
	})
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
