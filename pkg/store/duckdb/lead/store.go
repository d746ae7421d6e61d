package lead

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/boca-banker/boca-banker/pkg/models/store"
)

type Store interface {
	Add(ctx context.Context, records []store.LeadRecord) (inserted int, err error)
	List(ctx context.Context, county string) ([]store.LeadRecord, error)
}

type leadStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &leadStore{db: db}, nil
}

// Add inserts records one by one, skipping rows already present under the
// (county, parcel_id, sale_date) key and reporting how many were new.
func (l *leadStore) Add(ctx context.Context, records []store.LeadRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO leads (
			id, county, parcel_id, owner_name, situs_address,
			sale_price, sale_date, property_type, source, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := l.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, record := range records {
		id := record.ID
		if id == "" {
			id = uuid.NewString()
		}
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		_, err := stmt.ExecContext(ctx,
			id,
			record.County,
			record.ParcelID,
			record.OwnerName,
			record.SitusAddress,
			record.SalePrice,
			record.SaleDate,
			record.PropertyType,
			record.Source,
			createdAt,
		)
		if err != nil {
			if isDuplicate(err) {
				continue
			}
			return inserted, fmt.Errorf("insert lead %s: %w", record.ParcelID, err)
		}
		inserted++
	}
	return inserted, nil
}

func (l *leadStore) List(ctx context.Context, county string) ([]store.LeadRecord, error) {
	query := `
		SELECT id, county, parcel_id, owner_name, situs_address,
			sale_price, sale_date, property_type, source, created_at
		FROM leads`
	var args []any
	if county != "" {
		query += " WHERE county = ?"
		args = append(args, county)
	}
	query += " ORDER BY sale_date DESC"

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []store.LeadRecord
	for rows.Next() {
		var record store.LeadRecord
		err := rows.Scan(
			&record.ID,
			&record.County,
			&record.ParcelID,
			&record.OwnerName,
			&record.SitusAddress,
			&record.SalePrice,
			&record.SaleDate,
			&record.PropertyType,
			&record.Source,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, record)
	}
	return leads, rows.Err()
}

// isDuplicate matches the constraint violation raised for the dedup key.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Constraint Error")
}
