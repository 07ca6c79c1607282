package database

// SavedGame is one stored game row: identity, outcome and the snapshot JSON
// it can be restored from.
type SavedGame struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Variant   string `json:"variant"`
	Status    string `json:"status"`
	Winner    int    `json:"winner"` // player index, or -1 when unfinished
	Snapshot  string `json:"snapshot"`
}
