// Package lead ingests scraped county property-sale records into the
// pipeline. County exports disagree on header names, currency formatting and
// date layouts, so parsing is tolerant by design of the sources, strict on
// the fields a lead cannot live without.
package lead

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

// ErrMissingColumns is returned when a CSV lacks the required headers.
var ErrMissingColumns = fmt.Errorf("missing required columns")

// Store is the subset of the lead store the importer needs.
type Store interface {
	Add(ctx context.Context, leads []domain.Lead) (inserted int, err error)
}

type Importer struct {
	store Store
}

func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// headerAliases maps the canonical field name to the header spellings seen
// in county record exports.
var headerAliases = map[string][]string{
	"county":  {"county", "county_name"},
	"parcel":  {"parcel", "parcel_id", "parcel_number", "pin", "folio"},
	"owner":   {"owner", "owner_name", "grantee"},
	"address": {"address", "situs", "situs_address", "property_address"},
	"price":   {"price", "sale_price", "sale_amount", "consideration"},
	"date":    {"date", "sale_date", "recording_date", "doc_date"},
	"type":    {"type", "property_type", "use_code"},
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
}

// ImportCSV parses a county-record CSV and stores the valid rows. Rows
// missing a parcel id, a sale price or a parseable date are skipped and
// reported, not fatal.
func (i *Importer) ImportCSV(ctx context.Context, source string, r io.Reader) (*domain.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := mapColumns(header)
	for _, required := range []string{"parcel", "price", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, required)
		}
	}

	result := &domain.ImportResult{}
	var leads []domain.Lead
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped = append(result.Skipped, domain.ImportSkip{Line: line, Reason: err.Error()})
			continue
		}
		result.Parsed++

		lead, err := parseRow(columns, record, source)
		if err != nil {
			result.Skipped = append(result.Skipped, domain.ImportSkip{Line: line, Reason: err.Error()})
			continue
		}
		leads = append(leads, lead)
	}

	if len(leads) > 0 {
		inserted, err := i.store.Add(ctx, leads)
		if err != nil {
			return nil, fmt.Errorf("store leads: %w", err)
		}
		result.Imported = inserted
		result.Duplicate = len(leads) - inserted
	}
	return result, nil
}

func mapColumns(header []string) map[string]int {
	columns := map[string]int{}
	for idx, name := range header {
		normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
		for field, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					columns[field] = idx
				}
			}
		}
	}
	return columns
}

func parseRow(columns map[string]int, record []string, source string) (domain.Lead, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	parcel := field("parcel")
	if parcel == "" {
		return domain.Lead{}, fmt.Errorf("empty parcel id")
	}

	price, err := ParseCurrency(field("price"))
	if err != nil {
		return domain.Lead{}, fmt.Errorf("sale price: %w", err)
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.Lead{}, fmt.Errorf("sale price must be positive, got %s", price)
	}

	saleDate, err := parseDate(field("date"))
	if err != nil {
		return domain.Lead{}, fmt.Errorf("sale date: %w", err)
	}

	return domain.Lead{
		County:       field("county"),
		ParcelID:     parcel,
		OwnerName:    field("owner"),
		SitusAddress: field("address"),
		SalePrice:    price,
		SaleDate:     saleDate,
		PropertyType: domain.PropertyType(strings.ToLower(field("type"))),
		Source:       source,
	}, nil
}

// ParseCurrency accepts county formatting like "$1,234,567.00".
func ParseCurrency(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return value, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
