// Package table provides the in-memory working table the pipeline stages
// pass between each other.
//
// Cells are tagged values: present(string) or absent. The distinction
// matters because source exports conflate "no value" with "empty string"
// and the cleansing rules treat them differently. Nothing in this package
// coerces one into the other.
//
// Alongside its value columns a table carries boolean flag columns
// (per-field reject flags, stage-level reject flags, dedup tags). Flag
// columns are appended by the stage that computes them and default to
// false for rows that predate the column.
package table

import "fmt"

// Value is a single cell: either a present string or absent.
// The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// String returns a present Value holding s. An empty string is a valid
// present value, distinct from Absent().
func String(s string) Value {
	return Value{s: s, ok: true}
}

// Absent returns the absent marker.
func Absent() Value {
	return Value{}
}

// Present reports whether the cell holds a value.
func (v Value) Present() bool { return v.ok }

// Str returns the held string, or "" when absent.
func (v Value) Str() string { return v.s }

// Equal reports cell equality. Two absent cells are equal; an absent
// cell never equals a present one, including present-empty.
func (v Value) Equal(o Value) bool {
	if v.ok != o.ok {
		return false
	}
	return !v.ok || v.s == o.s
}

func (v Value) String() string {
	if !v.ok {
		return "<absent>"
	}
	return v.s
}

// Record is one row of the working table: field name to cell value,
// plus the boolean flags set against the row so far.
type Record struct {
	values map[string]Value
	flags  map[string]bool
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{
		values: make(map[string]Value),
		flags:  make(map[string]bool),
	}
}

// Get returns the cell for field. A field the record has never seen is
// absent.
func (r Record) Get(field string) Value {
	return r.values[field]
}

// Set stores v under field.
func (r Record) Set(field string, v Value) {
	r.values[field] = v
}

// Flag returns the named boolean flag; unset flags are false.
func (r Record) Flag(name string) bool {
	return r.flags[name]
}

// SetFlag stores the named boolean flag.
func (r Record) SetFlag(name string, v bool) {
	r.flags[name] = v
}

// Clone returns a deep copy of the record. Stages that tag or rewrite
// rows clone first so earlier stage outputs stay stable.
func (r Record) Clone() Record {
	c := NewRecord()
	for k, v := range r.values {
		c.values[k] = v
	}
	for k, v := range r.flags {
		c.flags[k] = v
	}
	return c
}

// SchemaError reports a required column missing from the input schema.
// It is the fatal error class: the run aborts before any row is
// processed. Per-row validation failures are never SchemaErrors; they
// become reject flags instead.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q missing from input schema", e.Column)
}

// Table is an ordered collection of records with a declared column set.
type Table struct {
	cols     []string
	flagCols []string
	rows     []Record
}

// New creates an empty table with the given value columns.
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns the value column names in declaration order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// FlagColumns returns the flag column names in the order they were added.
func (t *Table) FlagColumns() []string {
	return append([]string(nil), t.flagCols...)
}

// HasColumn reports whether the named value column is declared.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Require returns a *SchemaError if the named value column is not
// declared.
func (t *Table) Require(name string) error {
	if !t.HasColumn(name) {
		return &SchemaError{Column: name}
	}
	return nil
}

// AddColumn declares a new value column (for derived fields). Existing
// rows read as absent until written. Re-declaring is a no-op.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.cols = append(t.cols, name)
	}
}

// AddFlagColumn declares a new flag column. Existing rows read as false
// until written. Re-declaring is a no-op.
func (t *Table) AddFlagColumn(name string) {
	for _, c := range t.flagCols {
		if c == name {
			return
		}
	}
	t.flagCols = append(t.flagCols, name)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th record. Records are reference-like: mutating the
// returned record mutates the table.
func (t *Table) Row(i int) Record { return t.rows[i] }

// Append adds a record to the end of the table.
func (t *Table) Append(r Record) {
	t.rows = append(t.rows, r)
}

// Empty returns a new table with the same column and flag declarations
// and no rows.
func (t *Table) Empty() *Table {
	return &Table{
		cols:     append([]string(nil), t.cols...),
		flagCols: append([]string(nil), t.flagCols...),
	}
}

// Clone returns a deep copy of the table, rows included.
func (t *Table) Clone() *Table {
	c := t.Empty()
	c.rows = make([]Record, 0, len(t.rows))
	for _, r := range t.rows {
		c.rows = append(c.rows, r.Clone())
	}
	return c
}

// Shape returns (rows, value columns). Matches the ingest acceptance
// check: a 100-row file with 13 declared columns ingests to (100, 13).
func (t *Table) Shape() (int, int) {
	return len(t.rows), len(t.cols)
}
