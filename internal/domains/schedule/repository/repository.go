package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/sheets"
	"homestay/internal/domains/schedule/model"
	"homestay/shared/constant"
	"homestay/shared/failure"

	"github.com/rs/zerolog/log"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Schedule reads and mutates the booking sheet. Snapshot is a single fetch
// of the whole sheet; callers take one snapshot per action and never reuse
// it across actions, so the grid is always as fresh as the store allows.
type Schedule interface {
	Snapshot(ctx context.Context) (model.Snapshot, error)
	Apply(ctx context.Context, writes []model.CellWrite) error
	Clear(ctx context.Context, addr model.CellAddress) error
}

type repositoryImpl struct {
	sheets sheets.Sheets
	cfg    *config.Config
	otel   otel.Otel
}

func New(sheets sheets.Sheets, cfg *config.Config, otel otel.Otel) Schedule {
	return &repositoryImpl{
		sheets: sheets,
		cfg:    cfg,
		otel:   otel,
	}
}

func (r *repositoryImpl) Snapshot(ctx context.Context) (res model.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	values, err := r.sheets.GetValues(ctx, r.cfg.Sheets.SheetName)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch schedule sheet")

		return res, fmt.Errorf("failed to fetch schedule sheet: %w", err)
	}

	if len(values) == 0 {
		log.Error().Str("sheet", r.cfg.Sheets.SheetName).Msg("schedule sheet is empty")

		return res, failure.EmptySheet // nolint:wrapcheck
	}

	return model.NewSnapshot(values), nil
}

// Apply commits all writes in one batchUpdate call. Each write becomes its
// own updateCells request addressed by zero-based grid coordinates; only the
// userEnteredValue field is touched so formatting survives. The batch is
// single-shot: there is no partial retry or rollback on failure.
func (r *repositoryImpl) Apply(ctx context.Context, writes []model.CellWrite) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Apply")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(writes) == 0 {
		return failure.NothingToUpdate // nolint:wrapcheck
	}

	requests := make([]*sheetsapi.Request, 0, len(writes))

	for _, write := range writes {
		value := write.Value

		requests = append(requests, &sheetsapi.Request{
			UpdateCells: &sheetsapi.UpdateCellsRequest{
				Start: &sheetsapi.GridCoordinate{
					SheetId:     r.cfg.Sheets.SheetID,
					RowIndex:    int64(write.Address.Row),
					ColumnIndex: int64(write.Address.Col),
				},
				Rows: []*sheetsapi.RowData{
					{
						Values: []*sheetsapi.CellData{
							{
								UserEnteredValue: &sheetsapi.ExtendedValue{
									StringValue: &value,
								},
							},
						},
					},
				},
				Fields: "userEnteredValue",
			},
		})
	}

	if err = r.sheets.BatchUpdateCells(ctx, requests); err != nil {
		log.Error().Err(err).Int("cells", len(writes)).Msg("failed to commit cell batch")

		return fmt.Errorf("failed to commit cell batch: %w", err)
	}

	log.Info().Int("cells", len(writes)).Msg("cell batch committed")

	return nil
}

// Clear empties a single cell with a RAW values.update on its A1 range.
func (r *repositoryImpl) Clear(ctx context.Context, addr model.CellAddress) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	writeRange := fmt.Sprintf("%s!%s", r.cfg.Sheets.SheetName, addr.A1())

	if err = r.sheets.UpdateValue(ctx, writeRange, ""); err != nil {
		log.Error().Err(err).Str("range", writeRange).Msg("failed to clear cell")

		return fmt.Errorf("failed to clear cell: %w", err)
	}

	log.Info().Str("range", writeRange).Msg("cell cleared")

	return nil
}
