package models

import "time"

// GeneratedStatement records one generated document so the history view can
// list and re-download past renders.
type GeneratedStatement struct {
	ID           string `gorm:"primaryKey"` // uuid
	Bank         string `gorm:"index"`
	Template     string // layout key, e.g. "chase" or "dynamic"
	LayoutStyle  string // sequential / two_column, dynamic only
	AccountLast4 string
	FilePath     string // archive key of the stored PDF
	ByteSize     int64
	// Seed reproduces the generated data; StyleSeed reproduces the dynamic
	// layout's styling picks.
	Seed      int64
	StyleSeed int64
	CreatedAt time.Time
}
