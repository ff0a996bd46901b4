// internal/registration/compose.go
package registration

import (
	"fmt"

	"club-portal/internal/storage"
)

// Compose flattens a validated draft into the record shape of the
// event_registrations table. Member fields are numbered by the member's
// original slot index, not by a compacted count of complete members: a draft
// with only slots 0 and 2 complete yields member1_* and member3_* keys. The
// stored schema depends on that numbering, so it is preserved as is.
//
// Deterministic; emits no ids or timestamps (the store owns those). An
// entirely empty member slot contributes no keys at all.
func Compose(eventID string, d *Draft) storage.Record {
	record := storage.Record{
		"team_leader_name":   d.Leader.Name,
		"team_leader_branch": d.Leader.Branch,
		"team_leader_year":   d.Leader.Year,
		"team_leader_email":  d.Leader.Email,
		"team_leader_mobile": d.Leader.Mobile,
	}
	if eventID != "" {
		record["event_id"] = eventID
	}

	for i, m := range d.Members {
		if !m.Complete() {
			continue
		}
		num := i + 1
		record[fmt.Sprintf("member%d_name", num)] = m.Name
		record[fmt.Sprintf("member%d_branch", num)] = m.Branch
		record[fmt.Sprintf("member%d_year", num)] = m.Year
	}

	return record
}
