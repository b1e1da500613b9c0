package model

import (
	"fmt"
	"strings"
	"time"
)

// Grid geometry of the schedule sheet: row 0 holds date headers, column 1
// holds room codes, and every (room row, date column) intersection is a
// booking cell.
const (
	HeaderRowIndex       = 0
	RoomColumnIndex      = 1
	FirstDataRowIndex    = 1
	FirstDateColumnIndex = 2
)

// HeaderFormats are the date layouts accepted in the header row, probed in
// order; the first header cell that matches any layout wins. Day-first
// layouts take precedence over month-first ones.
var HeaderFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01",
	"2/1",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
}

// Snapshot is one rectangular read of the sheet. The values API trims
// trailing empty cells per row, so rows are padded to a uniform width on
// construction and never mutated afterwards.
type Snapshot struct {
	rows [][]string
}

func NewSnapshot(rows [][]string) Snapshot {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		normalized[i] = padded
	}

	return Snapshot{rows: normalized}
}

func (s Snapshot) RowCount() int {
	return len(s.rows)
}

func (s Snapshot) ColumnCount() int {
	if len(s.rows) == 0 {
		return 0
	}

	return len(s.rows[0])
}

// Value returns the cell content at addr, or "" when addr falls outside the
// snapshot.
func (s Snapshot) Value(addr CellAddress) string {
	if addr.Row < 0 || addr.Row >= len(s.rows) {
		return ""
	}

	if addr.Col < 0 || addr.Col >= len(s.rows[addr.Row]) {
		return ""
	}

	return s.rows[addr.Row][addr.Col]
}

// HeaderColumns returns the raw header cells from the first date column
// onwards, used to report what the sheet actually contains when a date
// cannot be resolved.
func (s Snapshot) HeaderColumns() []string {
	if len(s.rows) == 0 {
		return nil
	}

	header := s.rows[HeaderRowIndex]
	if len(header) <= FirstDateColumnIndex {
		return nil
	}

	columns := make([]string, 0, len(header)-FirstDateColumnIndex)
	for _, cell := range header[FirstDateColumnIndex:] {
		columns = append(columns, strings.TrimSpace(cell))
	}

	return columns
}

// CellAddress is a zero-based (row, column) position within the snapshot.
type CellAddress struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// A1 renders the address in A1 notation, e.g. {Row: 4, Col: 2} -> "C5".
func (a CellAddress) A1() string {
	return fmt.Sprintf("%s%d", ColumnLetter(a.Col), a.Row+1)
}

// ColumnLetter converts a zero-based column index to its spreadsheet letter
// using bijective base-26: 0 -> A, 25 -> Z, 26 -> AA, 701 -> ZZ.
func ColumnLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}

	return letters
}

// ColumnIndex is the inverse of ColumnLetter.
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("empty column letters")
	}

	index := 0

	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column letters %q", letters)
		}

		index = index*26 + int(r-'A') + 1
	}

	return index - 1, nil
}

// RoomNotFoundError reports a room code with no matching row in the sheet.
type RoomNotFoundError struct {
	RoomID string
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room %s has no row in the schedule sheet", e.RoomID)
}

// DateNotFoundError reports a date that matched no header column under any
// accepted layout. It carries the layouts tried and the header cells that
// were actually present so the caller can surface both.
type DateNotFoundError struct {
	Date          time.Time
	FormatsTried  []string
	HeaderColumns []string
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf(
		"date %s matched no header column (tried formats %s; sheet headers: %s)",
		e.Date.Format(HeaderFormats[0]),
		strings.Join(e.FormatsTried, ", "),
		strings.Join(e.HeaderColumns, ", "),
	)
}

// LocateRoomRow finds the first data row whose room column equals roomID
// exactly (after trimming whitespace).
func (s Snapshot) LocateRoomRow(roomID string) (int, error) {
	for row := FirstDataRowIndex; row < len(s.rows); row++ {
		if len(s.rows[row]) <= RoomColumnIndex {
			continue
		}

		if strings.TrimSpace(s.rows[row][RoomColumnIndex]) == roomID {
			return row, nil
		}
	}

	return 0, &RoomNotFoundError{RoomID: roomID}
}

// LocateDateColumn finds the header column for date by rendering the date in
// every accepted layout, in order, and returning the first column whose
// trimmed header equals one of the renderings. Layout order decides ties:
// an earlier layout beats a later one even when both would match somewhere.
func (s Snapshot) LocateDateColumn(date time.Time) (int, error) {
	if len(s.rows) > 0 {
		header := s.rows[HeaderRowIndex]

		for _, layout := range HeaderFormats {
			rendered := date.Format(layout)

			for col := FirstDateColumnIndex; col < len(header); col++ {
				if strings.TrimSpace(header[col]) == rendered {
					return col, nil
				}
			}
		}
	}

	return 0, &DateNotFoundError{
		Date:          date,
		FormatsTried:  HeaderFormats,
		HeaderColumns: s.HeaderColumns(),
	}
}

// Locate resolves a (room, date) pair to its cell address.
func (s Snapshot) Locate(roomID string, date time.Time) (CellAddress, error) {
	row, err := s.LocateRoomRow(roomID)
	if err != nil {
		return CellAddress{}, err
	}

	col, err := s.LocateDateColumn(date)
	if err != nil {
		return CellAddress{}, err
	}

	return CellAddress{Row: row, Col: col}, nil
}

// CellWrite is one pending cell mutation.
type CellWrite struct {
	Address CellAddress
	Value   string
}

// Conflict is a pending write whose target cell already holds a value.
type Conflict struct {
	Address      CellAddress
	CurrentValue string
}

// DetectConflicts splits writes into those targeting empty cells and those
// targeting occupied ones. A cell is occupied iff its trimmed value is
// non-empty; the descriptor content is never interpreted here.
func DetectConflicts(snapshot Snapshot, writes []CellWrite) (clean []CellWrite, conflicts []Conflict) {
	for _, write := range writes {
		current := strings.TrimSpace(snapshot.Value(write.Address))
		if current == "" {
			clean = append(clean, write)

			continue
		}

		conflicts = append(conflicts, Conflict{
			Address:      write.Address,
			CurrentValue: snapshot.Value(write.Address),
		})
	}

	return clean, conflicts
}
