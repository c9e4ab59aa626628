package store

import (
	"testing"
	"time"

	"github.com/willisshum/entity-onboarding/internal/resolve"
	"github.com/willisshum/entity-onboarding/internal/table"
)

func TestFromRecord(t *testing.T) {
	rec := table.NewRecord()
	rec.Set("EntityID", table.String(" 42 "))
	rec.Set("EntityName", table.String("Acme"))
	rec.Set("EntityType", table.String("Company"))
	rec.Set("RegistrationNumber", table.String("REG12345"))
	rec.Set("IncorporationDate", table.String("2021-09-17"))
	rec.Set("ContactEmail", table.String("ops@acme.com"))
	rec.Set("Status", table.String("Active"))
	// Raw inputs are decoys; the store must read the revised columns.
	rec.Set("CountryCode", table.String("XX"))
	rec.Set("StateCode", table.String("ZZ"))
	rec.Set(resolve.CountryCodeRevised, table.String("US"))
	rec.Set(resolve.StateCodeRevised, table.String("CA"))

	e := FromRecord(rec)

	if !e.EntityID.Valid || e.EntityID.Int64 != 42 {
		t.Errorf("EntityID = %+v, want 42", e.EntityID)
	}
	if !e.EntityName.Valid || e.EntityName.String != "Acme" {
		t.Errorf("EntityName = %+v, want Acme", e.EntityName)
	}
	if !e.CountryCode.Valid || e.CountryCode.String != "US" {
		t.Errorf("CountryCode = %+v, want the revised code US", e.CountryCode)
	}
	if !e.StateCode.Valid || e.StateCode.String != "CA" {
		t.Errorf("StateCode = %+v, want the revised code CA", e.StateCode)
	}
	want := time.Date(2021, time.September, 17, 0, 0, 0, 0, time.UTC)
	if !e.IncorporationDate.Valid || !e.IncorporationDate.Time.Equal(want) {
		t.Errorf("IncorporationDate = %+v, want %v", e.IncorporationDate, want)
	}
	// Fields never set on the record come through as NULL.
	if e.Industry.Valid {
		t.Errorf("Industry = %+v, want NULL", e.Industry)
	}
	if e.LastUpdate.Valid {
		t.Errorf("LastUpdate = %+v, want NULL", e.LastUpdate)
	}
}

func TestFromRecord_NullCasts(t *testing.T) {
	tests := []struct {
		name string
		id   table.Value
		want bool // Valid
	}{
		{"absent id is NULL", table.Absent(), false},
		{"non-numeric id is NULL", table.String("abc"), false},
		{"empty id is NULL", table.String(""), false},
		{"numeric id is valid", table.String("7"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := table.NewRecord()
			rec.Set("EntityID", tt.id)
			if got := FromRecord(rec).EntityID.Valid; got != tt.want {
				t.Errorf("EntityID.Valid = %v, want %v", got, tt.want)
			}
		})
	}

	rec := table.NewRecord()
	rec.Set("IncorporationDate", table.String("not-a-date"))
	if FromRecord(rec).IncorporationDate.Valid {
		t.Error("unparseable date should cast to NULL")
	}
}

func TestTransform(t *testing.T) {
	tbl := table.New("EntityName")
	for _, name := range []string{"Acme", "Globex"} {
		rec := table.NewRecord()
		rec.Set("EntityName", table.String(name))
		tbl.Append(rec)
	}

	entities := Transform(tbl)
	if len(entities) != 2 {
		t.Fatalf("Transform returned %d entities, want 2", len(entities))
	}
	if entities[0].EntityName.String != "Acme" || entities[1].EntityName.String != "Globex" {
		t.Errorf("Transform order broken: got %q, %q",
			entities[0].EntityName.String, entities[1].EntityName.String)
	}
}
