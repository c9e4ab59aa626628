// Package store projects accepted records onto the destination schema
// and upserts them into the entities table.
//
// The transform is the last stage that sees the working table: fields
// are renamed to destination column names and cast to their declared
// types, with absent values becoming SQL NULLs via invalid pgtype
// values. Entities are immutable once built.
package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/willisshum/entity-onboarding/internal/resolve"
	"github.com/willisshum/entity-onboarding/internal/table"
)

// Entity is one accepted, validated record in destination shape.
// EntityID is the business identifier driving insert-vs-update; rows
// without one always insert.
type Entity struct {
	EntityID           pgtype.Int8
	EntityName         pgtype.Text
	EntityType         pgtype.Text
	RegistrationNumber pgtype.Text
	IncorporationDate  pgtype.Date
	CountryCode        pgtype.Text
	StateCode          pgtype.Text
	ContactEmail       pgtype.Text
	Industry           pgtype.Text
	Status             pgtype.Text
	LastUpdate         pgtype.Date
}

// FromRecord builds an Entity from a normalized record. Location codes
// come from the resolved *_revised columns, never the raw inputs.
func FromRecord(rec table.Record) Entity {
	return Entity{
		EntityID:           toInt8(rec.Get("EntityID")),
		EntityName:         toText(rec.Get("EntityName")),
		EntityType:         toText(rec.Get("EntityType")),
		RegistrationNumber: toText(rec.Get("RegistrationNumber")),
		IncorporationDate:  toDate(rec.Get("IncorporationDate")),
		CountryCode:        toText(rec.Get(resolve.CountryCodeRevised)),
		StateCode:          toText(rec.Get(resolve.StateCodeRevised)),
		ContactEmail:       toText(rec.Get("ContactEmail")),
		Industry:           toText(rec.Get("Industry")),
		Status:             toText(rec.Get("Status")),
		LastUpdate:         toDate(rec.Get("LastUpdate")),
	}
}

// Transform projects every row of an accepted table.
func Transform(t *table.Table) []Entity {
	entities := make([]Entity, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		entities = append(entities, FromRecord(t.Row(i)))
	}
	return entities
}

// toText converts a cell to pgtype.Text. Absent maps to NULL.
func toText(v table.Value) pgtype.Text {
	if !v.Present() {
		return pgtype.Text{}
	}
	return pgtype.Text{String: v.Str(), Valid: true}
}

// toDate converts a normalized YYYY-MM-DD cell to pgtype.Date. Absent
// or unparseable values map to NULL; unparseable values cannot reach
// the store in practice because the date reject flags fire upstream.
func toDate(v table.Value) pgtype.Date {
	if !v.Present() {
		return pgtype.Date{}
	}
	t, err := time.Parse("2006-01-02", v.Str())
	if err != nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}

// toInt8 converts a numeric identifier cell to pgtype.Int8. Absent or
// non-numeric values map to NULL.
func toInt8(v table.Value) pgtype.Int8 {
	if !v.Present() {
		return pgtype.Int8{}
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.Str()), 10, 64)
	if err != nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: n, Valid: true}
}
