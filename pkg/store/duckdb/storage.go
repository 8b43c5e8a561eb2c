package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ReportRunsSchema = `
	CREATE TABLE IF NOT EXISTS report_runs (
		run_id VARCHAR NOT NULL PRIMARY KEY,
		source VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`
const SalesRecordsSchema = `
	CREATE TABLE IF NOT EXISTS sales_records (
		run_id VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		category VARCHAR,
		ship_mode VARCHAR,
		segment VARCHAR,
		sales DOUBLE NOT NULL,
		discount DOUBLE NOT NULL,
		fields JSON,
		PRIMARY KEY (run_id, position)
	);
`
const CategoryDiscountsSchema = `
	CREATE TABLE IF NOT EXISTS category_discounts (
		run_id VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		avg_discount DOUBLE NOT NULL,
		PRIMARY KEY (run_id, category)
	);
`
const SegmentSalesSchema = `
	CREATE TABLE IF NOT EXISTS segment_sales (
		run_id VARCHAR NOT NULL,
		ship_mode VARCHAR NOT NULL,
		segment VARCHAR NOT NULL,
		total_sales DOUBLE NOT NULL,
		PRIMARY KEY (run_id, ship_mode, segment)
	);
`

var bootQueries = []string{
	ReportRunsSchema,
	SalesRecordsSchema,
	CategoryDiscountsSchema,
	SegmentSalesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	c, err := duckdb.NewConnector(settings.DbPath, func(exec driver.ExecerContext) error {
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
