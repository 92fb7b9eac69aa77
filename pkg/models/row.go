package models

import (
	"github.com/spf13/cast"
)

// AlertFromRow builds the typed view of a row using the configured column names.
// It reports false when symbol, price level or hash is missing or unusable.
func AlertFromRow(row Row, cfg TableConfig) (Alert, bool) {
	var alert Alert

	symbol, ok := textValue(row[cfg.SymbolColumnName])
	if !ok || symbol == "" {
		return alert, false
	}
	level, ok := numberValue(row[cfg.PriceLevelColumnName])
	if !ok {
		return alert, false
	}
	hash, ok := textValue(row[cfg.HashColumnName])
	if !ok || hash == "" {
		return alert, false
	}

	alert.Symbol = symbol
	alert.PriceLevel = level
	alert.Hash = hash
	alert.UserID, _ = textValue(row[cfg.UserIDColumnName])
	if direction, ok := textValue(row[cfg.DirectionColumnName]); ok {
		alert.Direction = Direction(direction)
	}
	if id, err := cast.ToInt64E(row["id"]); err == nil {
		alert.ID = RowID(id)
	}

	return alert, true
}

// ToRow is the inverse of AlertFromRow, without the backend assigned id.
func (a Alert) ToRow(cfg TableConfig) Row {
	row := Row{
		cfg.HashColumnName:       a.Hash,
		cfg.SymbolColumnName:     a.Symbol,
		cfg.PriceLevelColumnName: a.PriceLevel,
		cfg.UserIDColumnName:     a.UserID,
	}
	if a.Direction != DirectionNone {
		row[cfg.DirectionColumnName] = string(a.Direction)
	}
	return row
}

func textValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

func numberValue(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}
