package dedupe

import (
	"testing"

	"github.com/willisshum/entity-onboarding/internal/table"
)

func entityTable(rows ...map[string]table.Value) *table.Table {
	t := table.New("EntityID", "EntityName", "EntityType", "RegistrationNumber", "Status")
	for _, fields := range rows {
		rec := table.NewRecord()
		for k, v := range fields {
			rec.Set(k, v)
		}
		t.Append(rec)
	}
	return t
}

func entityRow(id, name, typ, reg, status string) map[string]table.Value {
	row := map[string]table.Value{
		"EntityName": table.String(name),
		"EntityType": table.String(typ),
		"Status":     table.String(status),
	}
	if id != "" {
		row["EntityID"] = table.String(id)
	}
	if reg != "" {
		row["RegistrationNumber"] = table.String(reg)
	}
	return row
}

func TestEngine_SingletonPassesUntagged(t *testing.T) {
	in := entityTable(entityRow("1", "Acme", "Company", "REG11111", "Active"))
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 1 || res.Conflicts.Len() != 0 {
		t.Fatalf("got (%d accepted, %d conflicts), want (1, 0)", res.Accepted.Len(), res.Conflicts.Len())
	}
	if res.Accepted.Row(0).Flag(DuplicateCandidate) {
		t.Error("singleton must not be tagged as duplicate candidate")
	}
}

func TestEngine_TrueDuplicatesKeepFirstTagged(t *testing.T) {
	// Same entity exported twice under different surrogate IDs. The
	// surrogate is ignored in comparison, so this is a true duplicate.
	in := entityTable(
		entityRow("1", "Acme", "Company", "REG11111", "Active"),
		entityRow("2", "Acme", "Company", "REG11111", "Active"),
	)
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 1 || res.Conflicts.Len() != 0 {
		t.Fatalf("got (%d accepted, %d conflicts), want (1, 0)", res.Accepted.Len(), res.Conflicts.Len())
	}
	kept := res.Accepted.Row(0)
	if !kept.Flag(DuplicateCandidate) {
		t.Error("kept representative must be tagged as duplicate candidate")
	}
	if got := kept.Get("EntityID").Str(); got != "1" {
		t.Errorf("kept EntityID = %q, want the first occurrence \"1\"", got)
	}
}

func TestEngine_ConflictRejectsWholeGroup(t *testing.T) {
	// Three exports of one entity; two agree, one differs on the
	// registration number. All three go to conflicts, including the
	// pair that agree with each other.
	in := entityTable(
		entityRow("1", "Acme", "Company", "REG11111", "Active"),
		entityRow("2", "Acme", "Company", "REG22222", "Active"),
		entityRow("3", "Acme", "Company", "REG11111", "Active"),
	)
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 0 {
		t.Errorf("accepted = %d rows, want 0", res.Accepted.Len())
	}
	if res.Conflicts.Len() != 3 {
		t.Fatalf("conflicts = %d rows, want 3", res.Conflicts.Len())
	}
	for i := 0; i < res.Conflicts.Len(); i++ {
		if !res.Conflicts.Row(i).Flag(DuplicateCandidate) {
			t.Errorf("conflict row %d not tagged as duplicate candidate", i)
		}
	}
}

func TestEngine_KeyDistinguishesGroups(t *testing.T) {
	// Same name, different type: two separate singletons, not a group.
	in := entityTable(
		entityRow("1", "Acme", "Company", "REG11111", "Active"),
		entityRow("2", "Acme", "Trust", "REG22222", "Active"),
	)
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 2 || res.Conflicts.Len() != 0 {
		t.Fatalf("got (%d accepted, %d conflicts), want (2, 0)", res.Accepted.Len(), res.Conflicts.Len())
	}
	for i := 0; i < 2; i++ {
		if res.Accepted.Row(i).Flag(DuplicateCandidate) {
			t.Errorf("row %d tagged despite distinct natural key", i)
		}
	}
}

func TestEngine_AbsenceEqualsAbsence(t *testing.T) {
	// Both copies lack a registration number: absent == absent, so the
	// pair is a true duplicate, not a conflict.
	in := entityTable(
		entityRow("1", "Acme", "Company", "", "Active"),
		entityRow("2", "Acme", "Company", "", "Active"),
	)
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 1 || res.Conflicts.Len() != 0 {
		t.Fatalf("got (%d accepted, %d conflicts), want (1, 0)", res.Accepted.Len(), res.Conflicts.Len())
	}
}

func TestEngine_AbsentVersusEmptyConflicts(t *testing.T) {
	in := entityTable(
		entityRow("1", "Acme", "Company", "", "Active"),
		entityRow("2", "Acme", "Company", "", "Active"),
	)
	// Second copy carries an explicit empty registration number, which
	// is a present value and so disagrees with the first copy's absence.
	in.Row(1).Set("RegistrationNumber", table.String(""))
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 0 || res.Conflicts.Len() != 2 {
		t.Fatalf("got (%d accepted, %d conflicts), want (0, 2)", res.Accepted.Len(), res.Conflicts.Len())
	}
}

func TestEngine_GroupOrderFollowsFirstOccurrence(t *testing.T) {
	in := entityTable(
		entityRow("1", "Zeta", "Company", "REG11111", "Active"),
		entityRow("2", "Alpha", "Company", "REG22222", "Active"),
		entityRow("3", "Zeta", "Company", "REG11111", "Active"),
	)
	res := NewEngine(nil).Run(in)

	if res.Accepted.Len() != 2 {
		t.Fatalf("accepted = %d rows, want 2", res.Accepted.Len())
	}
	if got := res.Accepted.Row(0).Get("EntityName").Str(); got != "Zeta" {
		t.Errorf("first accepted = %q, want Zeta (input order)", got)
	}
}

func TestEngine_DoesNotMutateInput(t *testing.T) {
	in := entityTable(
		entityRow("1", "Acme", "Company", "REG11111", "Active"),
		entityRow("2", "Acme", "Company", "REG11111", "Active"),
	)
	NewEngine(nil).Run(in)

	for i := 0; i < in.Len(); i++ {
		if in.Row(i).Flag(DuplicateCandidate) {
			t.Errorf("input row %d was tagged in place", i)
		}
	}
}
