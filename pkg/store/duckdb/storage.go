package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const StudiesSchema = `
	CREATE TABLE IF NOT EXISTS studies (
		id VARCHAR NOT NULL PRIMARY KEY,
		property_address VARCHAR NOT NULL,
		property_type VARCHAR NOT NULL,
		purchase_price DOUBLE NOT NULL,
		building_value DOUBLE NOT NULL,
		land_value DOUBLE NOT NULL,
		study_year INTEGER NOT NULL,
		tax_rate DOUBLE NOT NULL,
		discount_rate DOUBLE NOT NULL,
		bonus_rate DOUBLE NOT NULL,
		assets JSON NOT NULL,
		report JSON NOT NULL,
		total_first_year_deduction DOUBLE NOT NULL,
		total_tax_savings DOUBLE NOT NULL,
		npv_tax_savings DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const LeadsSchema = `
	CREATE TABLE IF NOT EXISTS leads (
		id VARCHAR NOT NULL PRIMARY KEY,
		county VARCHAR,
		parcel_id VARCHAR NOT NULL,
		owner_name VARCHAR,
		situs_address VARCHAR,
		sale_price DOUBLE NOT NULL,
		sale_date DATE NOT NULL,
		property_type VARCHAR,
		source VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (county, parcel_id, sale_date)
	);
`

var bootQueries = []string{
	StudiesSchema,
	LeadsSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (creating if needed) the embedded database and runs the boot
// schema before any store touches it.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
