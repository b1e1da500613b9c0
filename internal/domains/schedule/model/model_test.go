package model_test

import (
	"errors"
	"testing"
	"time"

	"homestay/internal/domains/schedule/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() model.Snapshot {
	return model.NewSnapshot([][]string{
		{"Phòng", "Mã", "01/09/2025", "2/9/2025", "03/09"},
		{"Bungalow Lớn", "1001", "", "Linh - Đã đặt cọc - 500"},
		{"Bungalow Nhỏ 1", "1002", "An - Đang đợi đặt cọc", "", ""},
		{"Phòng Nhỏ", "1004"},
	})
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ColumnLetter(tt.index))

			index, err := model.ColumnIndex(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestColumnIndexRoundTrip(t *testing.T) {
	for index := 0; index < 1000; index++ {
		back, err := model.ColumnIndex(model.ColumnLetter(index))
		require.NoError(t, err)
		assert.Equal(t, index, back)
	}
}

func TestColumnIndexInvalid(t *testing.T) {
	_, err := model.ColumnIndex("")
	assert.Error(t, err)

	_, err = model.ColumnIndex("A1")
	assert.Error(t, err)
}

func TestCellAddressA1(t *testing.T) {
	assert.Equal(t, "A1", model.CellAddress{Row: 0, Col: 0}.A1())
	assert.Equal(t, "C5", model.CellAddress{Row: 4, Col: 2}.A1())
	assert.Equal(t, "AA11", model.CellAddress{Row: 10, Col: 26}.A1())
}

func TestSnapshotNormalization(t *testing.T) {
	snapshot := testSnapshot()

	assert.Equal(t, 4, snapshot.RowCount())
	assert.Equal(t, 5, snapshot.ColumnCount())

	// Short rows read as empty cells, not out-of-range.
	assert.Equal(t, "", snapshot.Value(model.CellAddress{Row: 3, Col: 4}))
	assert.Equal(t, "", snapshot.Value(model.CellAddress{Row: 99, Col: 99}))
}

func TestLocateRoomRow(t *testing.T) {
	snapshot := testSnapshot()

	row, err := snapshot.LocateRoomRow("1002")
	require.NoError(t, err)
	assert.Equal(t, 2, row)

	_, err = snapshot.LocateRoomRow("1006")

	var notFound *model.RoomNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "1006", notFound.RoomID)
}

func TestLocateDateColumn(t *testing.T) {
	snapshot := testSnapshot()
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	col, err := snapshot.LocateDateColumn(date)
	require.NoError(t, err)
	assert.Equal(t, 2, col)

	// Header written in a relaxed layout still resolves.
	col, err = snapshot.LocateDateColumn(time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, col)

	// Day/month-only header.
	col, err = snapshot.LocateDateColumn(time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 4, col)
}

func TestLocateDateColumnFormatOrder(t *testing.T) {
	// 04/05 is ambiguous: day-first reads 4 May, month-first reads 5 April.
	// The day-first layout comes earlier, so 4 May wins the same header.
	snapshot := model.NewSnapshot([][]string{
		{"Phòng", "Mã", "04/05/2025"},
		{"Bungalow Lớn", "1001", ""},
	})

	col, err := snapshot.LocateDateColumn(time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, col)

	col, err = snapshot.LocateDateColumn(time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestLocateDateColumnNotFound(t *testing.T) {
	snapshot := testSnapshot()
	date := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)

	_, err := snapshot.LocateDateColumn(date)

	var notFound *model.DateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, model.HeaderFormats, notFound.FormatsTried)
	assert.Contains(t, notFound.HeaderColumns, "01/09/2025")
	assert.Contains(t, notFound.Error(), "25/12/2025")
	assert.Contains(t, notFound.Error(), "02/01/2006")
}

func TestLocate(t *testing.T) {
	snapshot := testSnapshot()
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	addr, err := snapshot.Locate("1001", date)
	require.NoError(t, err)
	assert.Equal(t, model.CellAddress{Row: 1, Col: 2}, addr)

	_, err = snapshot.Locate("9999", date)

	var roomErr *model.RoomNotFoundError
	assert.True(t, errors.As(err, &roomErr))
}

func TestDetectConflicts(t *testing.T) {
	snapshot := testSnapshot()

	writes := []model.CellWrite{
		{Address: model.CellAddress{Row: 1, Col: 2}, Value: "An - Đang đợi đặt cọc"},
		{Address: model.CellAddress{Row: 1, Col: 3}, Value: "An - Đang đợi đặt cọc"},
		{Address: model.CellAddress{Row: 2, Col: 3}, Value: "An - Đang đợi đặt cọc"},
	}

	clean, conflicts := model.DetectConflicts(snapshot, writes)

	require.Len(t, clean, 2)
	assert.Equal(t, writes[0], clean[0])
	assert.Equal(t, writes[2], clean[1])

	require.Len(t, conflicts, 1)
	assert.Equal(t, model.CellAddress{Row: 1, Col: 3}, conflicts[0].Address)
	assert.Equal(t, "Linh - Đã đặt cọc - 500", conflicts[0].CurrentValue)
}

func TestDetectConflictsAllClean(t *testing.T) {
	snapshot := model.NewSnapshot([][]string{
		{"Phòng", "Mã", "01/09/2025"},
		{"Bungalow Lớn", "1001", "   "},
	})

	writes := []model.CellWrite{{Address: model.CellAddress{Row: 1, Col: 2}, Value: "x"}}

	clean, conflicts := model.DetectConflicts(snapshot, writes)
	assert.Len(t, clean, 1)
	assert.Empty(t, conflicts)
}
