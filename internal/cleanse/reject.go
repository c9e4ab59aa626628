package cleanse

import "github.com/willisshum/entity-onboarding/internal/table"

// Stage-level reject flag column names.
const (
	CleanseReject       = "cleanse_reject"
	BusinessRulesReject = "business_rules_reject"
)

// CleanseRejectFlags returns the fixed list of per-field flags folded
// into cleanse_reject. The list is fixed at design time, not derived
// from whatever flags happen to exist on the table: a new normalized
// field must be added here explicitly to participate in record-level
// rejection.
func CleanseRejectFlags() []string {
	return []string{
		RejectFlag("EntityName"),
		RejectFlag("EntityType"),
		RejectFlag("RegistrationNumber"),
		RejectFlag("IncorporationDate"),
		RejectFlag("LastUpdate"),
		RejectFlag("Status"),
		RejectFlag("Industry"),
		RejectFlag("ContactEmail"),
		RejectFlag("CountryCode"),
		RejectFlag("StateCode"),
	}
}

// FoldRejects computes a stage-level flag as the logical OR of the
// listed per-field flags, per row. A record is accepted by the stage
// only when every listed flag is false.
func FoldRejects(t *table.Table, out string, flags []string) {
	t.AddFlagColumn(out)
	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)
		rejected := false
		for _, f := range flags {
			if rec.Flag(f) {
				rejected = true
				break
			}
		}
		rec.SetFlag(out, rejected)
	}
}

// Split partitions a table on a boolean flag: rows with the flag false
// go to accepted, rows with it true go to rejected. Row order is
// preserved within each partition and records are copied, so the two
// outputs are independent of the input and of each other.
func Split(t *table.Table, flag string) (accepted, rejected *table.Table) {
	accepted = t.Empty()
	rejected = t.Empty()
	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)
		if rec.Flag(flag) {
			rejected.Append(rec.Clone())
		} else {
			accepted.Append(rec.Clone())
		}
	}
	return accepted, rejected
}
