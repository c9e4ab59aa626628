package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTemp writes content to a temp file and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_IngestShape(t *testing.T) {
	// 13 declared columns, 100 data rows: the ingested table must have
	// exactly that shape before any downstream stage adds columns.
	cols := []string{
		"EntityID", "EntityName", "EntityType", "RegistrationNumber",
		"IncorporationDate", "CountryCode", "Country", "StateCode",
		"State", "ContactEmail", "Industry", "Status", "LastUpdate",
	}
	var b strings.Builder
	b.WriteString(strings.Join(cols, ","))
	b.WriteString("\n")
	for i := 0; i < 100; i++ {
		row := make([]string, len(cols))
		for j := range row {
			row[j] = fmt.Sprintf("v%d_%d", i, j)
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	tbl, err := Read(writeTemp(t, b.String()), ',')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	rows, ncols := tbl.Shape()
	if rows != 100 || ncols != 13 {
		t.Errorf("Shape() = (%d, %d), want (100, 13)", rows, ncols)
	}
}

func TestRead_EmptyCellIsAbsent(t *testing.T) {
	tbl, err := Read(writeTemp(t, "A,B,C\n1,,3\n"), ',')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	rec := tbl.Row(0)
	if !rec.Get("A").Present() || rec.Get("A").Str() != "1" {
		t.Errorf("A = %v, want present \"1\"", rec.Get("A"))
	}
	if rec.Get("B").Present() {
		t.Errorf("empty cell B should be absent, got %v", rec.Get("B"))
	}
}

func TestRead_WhitespaceCellStaysPresent(t *testing.T) {
	// Whitespace-only cells must survive ingestion as present values:
	// the EntityName rule needs to see them to apply its documented
	// whitespace-to-empty collapse.
	tbl, err := Read(writeTemp(t, "A,B\n\"   \",x\n"), ',')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	v := tbl.Row(0).Get("A")
	if !v.Present() {
		t.Fatal("whitespace-only cell should be present")
	}
	if v.Str() != "   " {
		t.Errorf("whitespace-only cell = %q, want three spaces", v.Str())
	}
}

func TestRead_ShortRowReadsAbsent(t *testing.T) {
	tbl, err := Read(writeTemp(t, "A,B,C\n1,2\n"), ',')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	if tbl.Row(0).Get("C").Present() {
		t.Error("missing trailing cell should be absent")
	}
}

func TestRead_Delimiter(t *testing.T) {
	tbl, err := Read(writeTemp(t, "A|B\n1|2\n"), '|')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	if got := tbl.Row(0).Get("B").Str(); got != "2" {
		t.Errorf("B = %q, want \"2\"", got)
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value", "hello", "hello"},
		{"excel formula wrapper", `="00123"`, "00123"},
		{"bom prefix", "\uFEFFEntityID", "EntityID"},
		{"interior whitespace preserved", "  spaced  ", "  spaced  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tbl, err := Read(writeTemp(t, "A,B\nx,\n"), ',')
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}
	tbl.AddFlagColumn("A_reject")
	tbl.Row(0).SetFlag("A_reject", true)

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(out, tbl, ','); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(string(raw))
	want := "A,B,A_reject\nx,,true"
	if got != want {
		t.Errorf("written file =\n%s\nwant\n%s", got, want)
	}
}
