package models

// OpTotals are the committed operation counts stored with the board.
// Unlike metrics.Snapshot they survive across processes.
type OpTotals struct {
	Inserts     int64 `json:"inserts"`
	Moves       int64 `json:"moves"`
	Deletes     int64 `json:"deletes"`
	RowsShifted int64 `json:"rows_shifted"`
}
