package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/models/store"
	"github.com/boca-banker/boca-banker/pkg/runtime/terminal/export"
	"github.com/boca-banker/boca-banker/pkg/services/lead"
	"github.com/boca-banker/boca-banker/pkg/store/duckdb"
	leadstore "github.com/boca-banker/boca-banker/pkg/store/duckdb/lead"
)

type LeadsCmd struct {
	dbPath   string
	source   string
	reporter *export.Reporter
}

func NewLeadsCmd(reporter *export.Reporter) *cobra.Command {
	lc := &LeadsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage scraped property-sale leads",
	}

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a county-record CSV into the lead store",
		Args:  cobra.ExactArgs(1),
		RunE:  lc.runImport,
	}
	importCmd.Flags().StringVar(&lc.dbPath, "db", "boca-banker.db", "Path to the embedded database file")
	importCmd.Flags().StringVar(&lc.source, "source", "county-csv", "Source label recorded on imported leads")

	cmd.AddCommand(importCmd)
	return cmd
}

func (lc *LeadsCmd) runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: lc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	leads, err := leadstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create lead store: %w", err)
	}

	importer := lead.NewImporter(&storeAdapter{leads: leads})
	result, err := importer.ImportCSV(cmd.Context(), lc.source, file)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := lc.reporter.Writer()
	fmt.Fprintf(out, "Parsed %d rows: %d imported, %d duplicates, %d skipped\n",
		result.Parsed, result.Imported, result.Duplicate, len(result.Skipped))
	for _, skip := range result.Skipped {
		fmt.Fprintf(out, "  line %d: %s\n", skip.Line, skip.Reason)
	}
	return nil
}

// storeAdapter bridges the importer's domain leads onto the store records.
type storeAdapter struct {
	leads leadstore.Store
}

func (s *storeAdapter) Add(ctx context.Context, leads []domain.Lead) (int, error) {
	records := make([]store.LeadRecord, 0, len(leads))
	for _, l := range leads {
		records = append(records, adapters.MapLeadDomainToStore(l))
	}
	return s.leads.Add(ctx, records)
}
