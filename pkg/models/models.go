package models

import "time"

type Direction string

const (
	// DirectionNone marks a legacy alert evaluated with the tolerance band.
	DirectionNone Direction = ""
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

func (d Direction) IsValid() bool {
	return d == DirectionNone || d == DirectionBuy || d == DirectionSell
}

// RowID is the backend assigned identifier, used only for deletion.
type RowID int64

// Row is a loosely typed backend row keyed by column name.
type Row map[string]any

type Alert struct {
	ID         RowID     `json:"id"`
	Hash       string    `json:"hash"`
	Symbol     string    `json:"symbol"`
	PriceLevel float64   `json:"price_level"`
	UserID     string    `json:"user_id"`
	Direction  Direction `json:"initial_direction,omitempty"`
}

type NewAlert struct {
	UserID     string
	Symbol     string
	PriceLevel float64
	Direction  Direction
}

type PriceQuote struct {
	Symbol string
	Price  float64
}

type TriggeredAlert struct {
	Alert       Alert     `json:"alert"`
	Price       float64   `json:"price"`
	TriggeredAt time.Time `json:"triggered_at"`
}

type PassResult struct {
	PassID    string           `json:"pass_id"`
	Symbols   int              `json:"symbols"`
	Rows      int              `json:"rows"`
	Skipped   int              `json:"skipped"`
	Triggered []TriggeredAlert `json:"triggered"`
	Reaped    int              `json:"reaped"`
}

func (r *PassResult) TriggeredHashes() []string {
	hashes := make([]string, len(r.Triggered))
	for i, t := range r.Triggered {
		hashes[i] = t.Alert.Hash
	}
	return hashes
}
