package model

// Destination is read-only catalog data seeded out-of-band.
type Destination struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Difficulty  string
}
