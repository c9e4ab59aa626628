// Package ingest reads delimited exports into the working table and
// writes quarantine files back out.
//
// Ingestion is deliberately dumb: every cell is kept as a string, no
// numeric or date parsing happens here. The only transformations are
// artifact removal (BOM, Excel ="..." wrappers) and the empty-cell to
// absent mapping. Field-level trimming belongs to the cleansing rules,
// which need to see whitespace-only values as present.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/willisshum/entity-onboarding/internal/table"
)

// Read parses the delimited file at path into a table. The first row is
// the header and declares the column set. Rows shorter than the header
// read as absent in the trailing columns.
func Read(path string, comma rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input %s is empty", path)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = CleanHeader(h)
	}

	t := table.New(header...)
	for _, row := range rows[1:] {
		rec := table.NewRecord()
		for i, col := range header {
			if i >= len(row) {
				rec.Set(col, table.Absent())
				continue
			}
			rec.Set(col, toValue(row[i]))
		}
		t.Append(rec)
	}
	return t, nil
}

// toValue maps a raw cell to a tagged value. An empty cell (after
// artifact removal) is absent; everything else is kept verbatim,
// interior and surrounding whitespace included.
func toValue(raw string) table.Value {
	s := CleanCell(raw)
	if s == "" {
		return table.Absent()
	}
	return table.String(s)
}

// CleanHeader normalizes a header cell: artifact removal plus trimming.
func CleanHeader(s string) string {
	return strings.TrimSpace(CleanCell(s))
}

// CleanCell removes common export artifacts from a cell value:
//   - UTF-8 byte order mark
//   - Excel formula wrapper (="value")
//
// Whitespace is preserved; whitespace-only cells stay present.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// Write serializes a table to the given path, one column per declared
// value column followed by one column per flag column. Absent cells are
// written as empty strings; flags as "true"/"false". Used for the
// quarantine partitions, which must keep every original column so the
// rows can be reviewed and resubmitted.
func Write(path string, t *table.Table, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma

	cols := t.Columns()
	flags := t.FlagColumns()

	header := make([]string, 0, len(cols)+len(flags))
	header = append(header, cols...)
	header = append(header, flags...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	row := make([]string, len(header))
	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)
		for j, c := range cols {
			row[j] = rec.Get(c).Str()
		}
		for j, fc := range flags {
			if rec.Flag(fc) {
				row[len(cols)+j] = "true"
			} else {
				row[len(cols)+j] = "false"
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d to %s: %w", i, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
