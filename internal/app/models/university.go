package models

// University represents an institution that owns courses and participates in transfer rules
type University struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Active  bool   `json:"active"`
}
