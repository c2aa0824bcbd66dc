package models

const ItemTypeMessage = "message"

// Tombstone records that ItemID was deleted at DeletedAt (ms).
type Tombstone struct {
	ItemID    string `json:"itemId"`
	ItemType  string `json:"itemType"`
	DeletedAt int64  `json:"deletedAt"`
}

// Delta is one page of catch-up state. Clients feed NextTs back while HasMore.
type Delta struct {
	Messages   []*Message  `json:"messages"`
	Tombstones []Tombstone `json:"tombstones"`
	NextTs     int64       `json:"nextTs"`
	HasMore    bool        `json:"hasMore"`
}
