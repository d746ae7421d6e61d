package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boca-banker/boca-banker/pkg/models/store"
)

// ErrNotFound is returned when no study exists for the requested id.
var ErrNotFound = errors.New("study not found")

type Store interface {
	Create(ctx context.Context, record *store.StudyRecord) error
	Get(ctx context.Context, id string) (*store.StudyRecord, error)
	List(ctx context.Context) ([]store.StudySummaryRow, error)
	UpdateReport(ctx context.Context, record *store.StudyRecord) error
}

type studyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &studyStore{db: db}, nil
}

func (s *studyStore) Create(ctx context.Context, record *store.StudyRecord) error {
	query := `
		INSERT INTO studies (
			id, property_address, property_type, purchase_price,
			building_value, land_value, study_year, tax_rate,
			discount_rate, bonus_rate, assets, report,
			total_first_year_deduction, total_tax_savings, npv_tax_savings,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.PropertyAddress,
		record.PropertyType,
		record.PurchasePrice,
		record.BuildingValue,
		record.LandValue,
		record.StudyYear,
		record.TaxRate,
		record.DiscountRate,
		record.BonusRate,
		string(record.Assets),
		string(record.Report),
		record.TotalFirstYearDeduction,
		record.TotalTaxSavings,
		record.NPVTaxSavings,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert study: %w", err)
	}
	return nil
}

func (s *studyStore) Get(ctx context.Context, id string) (*store.StudyRecord, error) {
	query := `
		SELECT id, property_address, property_type, purchase_price,
			building_value, land_value, study_year, tax_rate,
			discount_rate, bonus_rate, assets, report,
			total_first_year_deduction, total_tax_savings, npv_tax_savings,
			created_at, updated_at
		FROM studies
		WHERE id = ?`

	var record store.StudyRecord
	var assets, report string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.PropertyAddress,
		&record.PropertyType,
		&record.PurchasePrice,
		&record.BuildingValue,
		&record.LandValue,
		&record.StudyYear,
		&record.TaxRate,
		&record.DiscountRate,
		&record.BonusRate,
		&assets,
		&report,
		&record.TotalFirstYearDeduction,
		&record.TotalTaxSavings,
		&record.NPVTaxSavings,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select study: %w", err)
	}
	record.Assets = []byte(assets)
	record.Report = []byte(report)
	return &record, nil
}

// List reads the scalar summary columns only; report blobs stay untouched.
func (s *studyStore) List(ctx context.Context) ([]store.StudySummaryRow, error) {
	query := `
		SELECT id, property_address, property_type, study_year,
			total_first_year_deduction, total_tax_savings, npv_tax_savings,
			created_at
		FROM studies
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list studies: %w", err)
	}
	defer rows.Close()

	var summaries []store.StudySummaryRow
	for rows.Next() {
		var row store.StudySummaryRow
		err := rows.Scan(
			&row.ID,
			&row.PropertyAddress,
			&row.PropertyType,
			&row.StudyYear,
			&row.TotalFirstYearDeduction,
			&row.TotalTaxSavings,
			&row.NPVTaxSavings,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan study summary: %w", err)
		}
		summaries = append(summaries, row)
	}
	return summaries, rows.Err()
}

func (s *studyStore) UpdateReport(ctx context.Context, record *store.StudyRecord) error {
	query := `
		UPDATE studies
		SET tax_rate = ?, discount_rate = ?, bonus_rate = ?, report = ?,
			total_first_year_deduction = ?, total_tax_savings = ?,
			npv_tax_savings = ?, updated_at = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		record.TaxRate,
		record.DiscountRate,
		record.BonusRate,
		string(record.Report),
		record.TotalFirstYearDeduction,
		record.TotalTaxSavings,
		record.NPVTaxSavings,
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update study: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update study: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, record.ID)
	}
	return nil
}
