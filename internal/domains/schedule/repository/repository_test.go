package repository_test

import (
	"context"
	"testing"

	"homestay/config"
	sheetMocks "homestay/infras/sheets/mocks"
	"homestay/internal/domains/schedule/model"
	"homestay/internal/domains/schedule/repository"
	"homestay/shared/failure"

	otelMocks "homestay/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	sheetsapi "google.golang.org/api/sheets/v4"
)

func newRepo(t *testing.T) (repository.Schedule, *sheetMocks.MockSheets) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sheets := sheetMocks.NewMockSheets(ctrl)

	cfg := &config.Config{}
	cfg.Sheets.SheetName = "Sheet1"
	cfg.Sheets.SheetID = 42

	return repository.New(sheets, cfg, otelMocks.NewOtel()), sheets
}

func TestSnapshot(t *testing.T) {
	repo, sheets := newRepo(t)

	sheets.EXPECT().
		GetValues(gomock.Any(), "Sheet1").
		Return([][]string{
			{"Phòng", "Mã", "01/09/2025"},
			{"Bungalow Lớn", "1001"},
		}, nil)

	snapshot, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.RowCount())
	assert.Equal(t, 3, snapshot.ColumnCount())
	assert.Equal(t, "1001", snapshot.Value(model.CellAddress{Row: 1, Col: 1}))
}

func TestSnapshotEmptySheet(t *testing.T) {
	repo, sheets := newRepo(t)

	sheets.EXPECT().GetValues(gomock.Any(), "Sheet1").Return([][]string{}, nil)

	_, err := repo.Snapshot(context.Background())
	assert.ErrorIs(t, err, failure.EmptySheet)
}

func TestApply(t *testing.T) {
	repo, sheets := newRepo(t)

	writes := []model.CellWrite{
		{Address: model.CellAddress{Row: 2, Col: 4}, Value: "An - Đang đợi đặt cọc"},
		{Address: model.CellAddress{Row: 2, Col: 5}, Value: "An - Đang đợi đặt cọc"},
	}

	sheets.EXPECT().
		BatchUpdateCells(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requests []*sheetsapi.Request) error {
			require.Len(t, requests, 2)

			for i, request := range requests {
				require.NotNil(t, request.UpdateCells)
				assert.Equal(t, "userEnteredValue", request.UpdateCells.Fields)
				assert.Equal(t, int64(42), request.UpdateCells.Start.SheetId)
				assert.Equal(t, int64(writes[i].Address.Row), request.UpdateCells.Start.RowIndex)
				assert.Equal(t, int64(writes[i].Address.Col), request.UpdateCells.Start.ColumnIndex)

				require.Len(t, request.UpdateCells.Rows, 1)
				require.Len(t, request.UpdateCells.Rows[0].Values, 1)
				require.NotNil(t, request.UpdateCells.Rows[0].Values[0].UserEnteredValue.StringValue)
				assert.Equal(t, writes[i].Value, *request.UpdateCells.Rows[0].Values[0].UserEnteredValue.StringValue)
			}

			return nil
		})

	err := repo.Apply(context.Background(), writes)
	assert.NoError(t, err)
}

func TestApplyNoWrites(t *testing.T) {
	repo, _ := newRepo(t)

	err := repo.Apply(context.Background(), nil)
	assert.ErrorIs(t, err, failure.NothingToUpdate)
}

func TestClear(t *testing.T) {
	repo, sheets := newRepo(t)

	sheets.EXPECT().UpdateValue(gomock.Any(), "Sheet1!E3", "").Return(nil)

	err := repo.Clear(context.Background(), model.CellAddress{Row: 2, Col: 4})
	assert.NoError(t, err)
}
