// internal/registration/draft.go

// Package registration implements the team registration submission pipeline:
// field validation, record composition, the submission state machine, and the
// notification message formatter.
package registration

// MaxMembers bounds the team size beyond the leader.
const MaxMembers = 4

// Leader holds the required team leader fields.
type Leader struct {
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Year   string `json:"year"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// TeamMember is one optional member slot. A slot is either fully filled or
// fully empty; anything in between fails validation.
type TeamMember struct {
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Year   string `json:"year"`
}

// Complete reports whether all three fields are non-empty.
func (m TeamMember) Complete() bool {
	return m.Name != "" && m.Branch != "" && m.Year != ""
}

// Empty reports whether all three fields are empty.
func (m TeamMember) Empty() bool {
	return m.Name == "" && m.Branch == "" && m.Year == ""
}

// Draft is the mutable form state for one registration session. It is owned
// exclusively by that session and destroyed on submit-success or cancel.
type Draft struct {
	Leader  Leader       `json:"team_leader"`
	Members []TeamMember `json:"members"`
}

// AddMember appends an empty member slot. Adding beyond MaxMembers is a
// no-op; the returned index is -1 in that case.
func (d *Draft) AddMember() int {
	if len(d.Members) >= MaxMembers {
		return -1
	}
	d.Members = append(d.Members, TeamMember{})
	return len(d.Members) - 1
}

// RemoveMember drops the slot at index i, shifting later slots down. Out of
// range indexes are ignored.
func (d *Draft) RemoveMember(i int) {
	if i < 0 || i >= len(d.Members) {
		return
	}
	d.Members = append(d.Members[:i], d.Members[i+1:]...)
}
