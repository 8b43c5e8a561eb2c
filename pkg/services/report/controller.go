package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/aggregate"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/normalize"
	"github.com/de-tools/sales-atlas/pkg/store/dataset"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/snapshot"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Request describes one report run.
type Request struct {
	Input     string
	Output    string
	Format    string
	Delimiter rune
	Sheet     string
	Columns   domain.Columns
}

// NewRequest derives a run request from loaded settings.
func NewRequest(cfg *config.Settings) (Request, error) {
	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Format:    cfg.Format,
		Delimiter: delimiter,
		Sheet:     cfg.Sheet,
		Columns:   cfg.Columns,
	}, nil
}

// Result holds everything computed for a run.
type Result struct {
	RunID     string
	Stats     store.LoadStats
	Records   []domain.Record
	Discounts domain.CategoryDiscounts
	Sales     domain.SegmentSales
	Report    *domain.Report
}

type Controller interface {
	// Build loads the dataset and computes both aggregates without writing anything.
	Build(ctx context.Context, req Request) (*Result, error)
	// Run builds the report, writes it to req.Output and records a snapshot
	// when a snapshot store is configured.
	Run(ctx context.Context, req Request) (*Result, error)
}

type DefaultController struct {
	loaders   dataset.Registry
	snapshots snapshot.Store

	now   func() time.Time
	newID func() string
}

// NewController wires a controller. snapshots may be nil.
func NewController(loaders dataset.Registry, snapshots snapshot.Store) *DefaultController {
	if loaders == nil {
		loaders = dataset.DefaultRegistry()
	}
	return &DefaultController{
		loaders:   loaders,
		snapshots: snapshots,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (ctrl *DefaultController) Build(ctx context.Context, req Request) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("input", req.Input).Logger()

	loader, err := ctrl.loaders.Create(req.Input, dataset.Options{
		Delimiter: req.Delimiter,
		Sheet:     req.Sheet,
		Required:  req.Columns.Required(),
	})
	if err != nil {
		return nil, err
	}

	raws, stats, err := loader.Load(ctx, req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", req.Input, err)
	}

	records, err := normalize.NormalizeAll(raws, req.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", req.Input, err)
	}

	discounts := aggregate.DiscountByCategory(records)
	sales := aggregate.SalesByShipModeAndSegment(records)

	logger.Info().
		Int("records", len(records)).
		Int("skipped_rows", stats.SkippedRows).
		Int("categories", len(discounts)).
		Int("ship_modes", len(sales)).
		Msg("dataset aggregated")

	return &Result{
		RunID:     ctrl.newID(),
		Stats:     stats,
		Records:   records,
		Discounts: discounts,
		Sales:     sales,
		Report:    adapters.BuildReport(discounts, sales),
	}, nil
}

func (ctrl *DefaultController) Run(ctx context.Context, req Request) (*Result, error) {
	if err := export.ValidateFormat(req.Format); err != nil {
		return nil, err
	}

	result, err := ctrl.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	cfg := export.DefaultConfig()
	if req.Delimiter != 0 {
		cfg.Delimiter = req.Delimiter
	}
	if err := export.WriteFile(req.Output, req.Format, cfg, result.Report); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", req.Output, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("output", req.Output).
		Str("format", req.Format).
		Str("run_id", result.RunID).
		Msg("report written")

	if ctrl.snapshots != nil {
		snapshot := adapters.MapRunToSnapshot(
			result.RunID, req.Input, ctrl.now().UTC(),
			result.Records, result.Discounts, result.Sales,
		)
		if err := ctrl.snapshots.Save(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("failed to save run snapshot: %w", err)
		}
	}

	return result, nil
}
