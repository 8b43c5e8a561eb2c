package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store persists report runs: the normalized records of a run and the two
// aggregates computed from them.
type Store interface {
	Save(ctx context.Context, snapshot store.Snapshot) error
}

type snapshotStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &snapshotStore{
		db: db,
	}, nil
}

func (s *snapshotStore) Save(ctx context.Context, snapshot store.Snapshot) error {
	if snapshot.RunID == "" {
		return fmt.Errorf("snapshot run id is required")
	}

	err := duckdb.RunInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_runs (run_id, source, created_at) VALUES (?, ?, ?)`,
			snapshot.RunID, snapshot.Source, snapshot.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		if err := insertRecords(ctx, tx, snapshot.Records); err != nil {
			return err
		}
		if err := insertDiscounts(ctx, tx, snapshot.Discounts); err != nil {
			return err
		}
		return insertSales(ctx, tx, snapshot.Sales)
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("run_id", snapshot.RunID).
		Int("records", len(snapshot.Records)).
		Int("categories", len(snapshot.Discounts)).
		Int("segments", len(snapshot.Sales)).
		Msg("snapshot saved")
	return nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, records []store.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sales_records (
			run_id, position, category, ship_mode, segment, sales, discount, fields
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		fields, err := json.Marshal(record.Fields)
		if err != nil {
			return fmt.Errorf("marshal fields: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			record.RunID,
			record.Position,
			record.Category,
			record.ShipMode,
			record.Segment,
			record.Sales,
			record.Discount,
			string(fields),
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", record.Position, err)
		}
	}
	return nil
}

func insertDiscounts(ctx context.Context, tx *sql.Tx, discounts []store.CategoryDiscount) error {
	if len(discounts) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO category_discounts (run_id, category, avg_discount) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, d := range discounts {
		if _, err := stmt.ExecContext(ctx, d.RunID, d.Category, d.AvgDiscount); err != nil {
			return fmt.Errorf("insert category discount %q: %w", d.Category, err)
		}
	}
	return nil
}

func insertSales(ctx context.Context, tx *sql.Tx, sales []store.SegmentSales) error {
	if len(sales) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO segment_sales (run_id, ship_mode, segment, total_sales) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range sales {
		if _, err := stmt.ExecContext(ctx, s.RunID, s.ShipMode, s.Segment, s.TotalSales); err != nil {
			return fmt.Errorf("insert segment sales %q/%q: %w", s.ShipMode, s.Segment, err)
		}
	}
	return nil
}
