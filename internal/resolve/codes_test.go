package resolve

import (
	"testing"

	"github.com/willisshum/entity-onboarding/internal/cleanse"
	"github.com/willisshum/entity-onboarding/internal/refdata"
	"github.com/willisshum/entity-onboarding/internal/table"
)

func locationTable(countryCode, country, stateCode, state table.Value) *table.Table {
	t := table.New("CountryCode", "Country", "StateCode", "State")
	rec := table.NewRecord()
	rec.Set("CountryCode", countryCode)
	rec.Set("Country", country)
	rec.Set("StateCode", stateCode)
	rec.Set("State", state)
	t.Append(rec)
	return t
}

func resolveOne(t *testing.T, tbl *table.Table) table.Record {
	t.Helper()
	catalog := refdata.Builtin()
	if err := CountryRule(catalog, nil).Apply(tbl); err != nil {
		t.Fatalf("CountryRule.Apply returned %v", err)
	}
	if err := SubdivisionRule(catalog, refdata.BuiltinLexicon(), nil).Apply(tbl); err != nil {
		t.Fatalf("SubdivisionRule.Apply returned %v", err)
	}
	return tbl.Row(0)
}

// ============================================================================
// Country Resolution Tests
// ============================================================================

func TestCountryRule(t *testing.T) {
	tests := []struct {
		name        string
		countryCode table.Value
		country     table.Value
		wantRaw     table.Value
		wantRevised table.Value
		wantReject  bool
	}{
		{
			name:        "valid code passes",
			countryCode: table.String("US"),
			country:     table.Absent(),
			wantRaw:     table.String("US"),
			wantRevised: table.String("US"),
			wantReject:  false,
		},
		{
			name:        "lowercase code uppercased in place",
			countryCode: table.String(" ca "),
			country:     table.Absent(),
			wantRaw:     table.String("CA"),
			wantRevised: table.String("CA"),
			wantReject:  false,
		},
		{
			name:        "code with subdivision suffix strips to country",
			countryCode: table.String("GB-EAW"),
			country:     table.Absent(),
			wantRaw:     table.String("GB-EAW"),
			wantRevised: table.String("GB"),
			wantReject:  false,
		},
		{
			name:        "unknown code falls back to name search",
			countryCode: table.String("XX"),
			country:     table.String("Germany"),
			wantRaw:     table.String("XX"),
			wantRevised: table.String("DE"),
			wantReject:  false,
		},
		{
			name:        "absent code resolves from misspelled name",
			countryCode: table.Absent(),
			country:     table.String("United Staets"),
			wantRaw:     table.Absent(),
			wantRevised: table.String("US"),
			wantReject:  false,
		},
		{
			name:        "unresolvable name carried through and rejected",
			countryCode: table.Absent(),
			country:     table.String("Qzzxjw"),
			wantRaw:     table.Absent(),
			wantRevised: table.String("Qzzxjw"),
			wantReject:  true,
		},
		{
			name:        "nothing to resolve rejects",
			countryCode: table.Absent(),
			country:     table.Absent(),
			wantRaw:     table.Absent(),
			wantRevised: table.Absent(),
			wantReject:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := locationTable(tt.countryCode, tt.country, table.Absent(), table.Absent())
			if err := CountryRule(refdata.Builtin(), nil).Apply(tbl); err != nil {
				t.Fatalf("Apply returned %v", err)
			}
			rec := tbl.Row(0)
			if got := rec.Get("CountryCode"); !got.Equal(tt.wantRaw) {
				t.Errorf("CountryCode = %v, want %v", got, tt.wantRaw)
			}
			if got := rec.Get(CountryCodeRevised); !got.Equal(tt.wantRevised) {
				t.Errorf("%s = %v, want %v", CountryCodeRevised, got, tt.wantRevised)
			}
			if got := rec.Flag(cleanse.RejectFlag("CountryCode")); got != tt.wantReject {
				t.Errorf("CountryCode_reject = %v, want %v", got, tt.wantReject)
			}
		})
	}
}

func TestCountryRule_MissingColumnIsSchemaError(t *testing.T) {
	tbl := table.New("Country")
	err := CountryRule(refdata.Builtin(), nil).Apply(tbl)
	if _, ok := err.(*table.SchemaError); !ok {
		t.Fatalf("got %v (%T), want *table.SchemaError", err, err)
	}
}

// ============================================================================
// Subdivision Resolution Tests
// ============================================================================

func TestSubdivisionRule(t *testing.T) {
	tests := []struct {
		name        string
		countryCode table.Value
		stateCode   table.Value
		state       table.Value
		wantRevised table.Value
	}{
		{
			name:        "valid pairing passes",
			countryCode: table.String("US"),
			stateCode:   table.String(" ca "),
			state:       table.Absent(),
			wantRevised: table.String("CA"),
		},
		{
			name:        "state repeating country code discarded",
			countryCode: table.String("US"),
			stateCode:   table.String("US"),
			state:       table.Absent(),
			wantRevised: table.Absent(),
		},
		{
			name:        "suffix mined from country code column",
			countryCode: table.String("GB-EAW"),
			stateCode:   table.Absent(),
			state:       table.Absent(),
			wantRevised: table.String("EAW"),
		},
		{
			name:        "invalid pairing falls back to name",
			countryCode: table.String("US"),
			stateCode:   table.String("ZZ"),
			state:       table.String("California"),
			wantRevised: table.String("CA"),
		},
		{
			name:        "misspelled name fuzzy-matches",
			countryCode: table.String("AU"),
			stateCode:   table.Absent(),
			state:       table.String("Victora"),
			wantRevised: table.String("VIC"),
		},
		{
			name:        "unresolvable name carried through",
			countryCode: table.String("US"),
			stateCode:   table.Absent(),
			state:       table.String("Qzzxjw"),
			wantRevised: table.String("Qzzxjw"),
		},
		{
			name:        "no country leaves free text untouched",
			countryCode: table.Absent(),
			stateCode:   table.Absent(),
			state:       table.String("California"),
			wantRevised: table.String("California"),
		},
		{
			name:        "nothing to resolve stays absent",
			countryCode: table.Absent(),
			stateCode:   table.Absent(),
			state:       table.Absent(),
			wantRevised: table.Absent(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := locationTable(tt.countryCode, table.Absent(), tt.stateCode, tt.state)
			rec := resolveOne(t, tbl)
			if got := rec.Get(StateCodeRevised); !got.Equal(tt.wantRevised) {
				t.Errorf("%s = %v, want %v", StateCodeRevised, got, tt.wantRevised)
			}
			if rec.Flag(cleanse.RejectFlag("StateCode")) {
				t.Error("subdivision resolution must never reject")
			}
		})
	}
}

func TestSubdivisionRule_TranslationFallback(t *testing.T) {
	// Catalog knows the subdivision only under its local name, so the
	// English query cannot fuzzy-match and must go through the lexicon.
	catalog := refdata.NewCatalog(
		[]refdata.Country{{Alpha2: "DE", Name: "Germany"}},
		[]refdata.Subdivision{{Code: "DE-BY", Name: "Bayern"}},
	)
	tbl := locationTable(table.String("DE"), table.Absent(), table.Absent(), table.String("Bavaria"))
	if err := CountryRule(catalog, nil).Apply(tbl); err != nil {
		t.Fatalf("CountryRule.Apply returned %v", err)
	}
	if err := SubdivisionRule(catalog, refdata.BuiltinLexicon(), nil).Apply(tbl); err != nil {
		t.Fatalf("SubdivisionRule.Apply returned %v", err)
	}
	if got := tbl.Row(0).Get(StateCodeRevised); !got.Equal(table.String("BY")) {
		t.Errorf("%s = %v, want BY via translation", StateCodeRevised, got)
	}
}

func TestSubdivisionRule_MissingColumnIsSchemaError(t *testing.T) {
	tbl := table.New("CountryCode", "Country", "State")
	err := SubdivisionRule(refdata.Builtin(), refdata.BuiltinLexicon(), nil).Apply(tbl)
	if _, ok := err.(*table.SchemaError); !ok {
		t.Fatalf("got %v (%T), want *table.SchemaError", err, err)
	}
}
