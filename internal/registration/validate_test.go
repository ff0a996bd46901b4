// internal/registration/validate_test.go
package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() *Draft {
	return &Draft{
		Leader: Leader{
			Name:   "Jane Doe",
			Branch: "CSE",
			Year:   "2nd",
			Email:  "jane@x.com",
			Mobile: "9876543210",
		},
		Members: []TeamMember{
			{Name: "Amit", Branch: "EE", Year: "1st"},
		},
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	result := Validate(validDraft())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
}

func TestValidate_LeaderFieldMissing(t *testing.T) {
	for _, clear := range []func(*Leader){
		func(l *Leader) { l.Name = "" },
		func(l *Leader) { l.Branch = "" },
		func(l *Leader) { l.Year = "" },
		func(l *Leader) { l.Email = "" },
		func(l *Leader) { l.Mobile = "" },
	} {
		d := validDraft()
		clear(&d.Leader)

		result := Validate(d)

		assert.False(t, result.Valid)
		assert.Equal(t, "Please fill all team leader fields.", result.Reason)
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	d := validDraft()
	d.Leader.Email = "not-an-email"

	result := Validate(d)

	assert.False(t, result.Valid)
	assert.Equal(t, "Please enter a valid email address.", result.Reason)
}

func TestValidate_EmailWithSpaces(t *testing.T) {
	d := validDraft()
	d.Leader.Email = "jane doe@x.com"

	result := Validate(d)

	assert.False(t, result.Valid)
	assert.Equal(t, "Please enter a valid email address.", result.Reason)
}

func TestValidate_InvalidMobile(t *testing.T) {
	cases := []string{"12345", "98765432101", "98765abc10", "+919876543210"}
	for _, mobile := range cases {
		d := validDraft()
		d.Leader.Mobile = mobile

		result := Validate(d)

		assert.False(t, result.Valid, "mobile %q should be rejected", mobile)
		assert.Equal(t, "Please enter a valid 10-digit mobile number.", result.Reason)
	}
}

func TestValidate_RulePriorityOrder(t *testing.T) {
	// Fails both leader completeness and email shape; leader completeness
	// must win.
	d := validDraft()
	d.Leader.Name = ""
	d.Leader.Email = "not-an-email"

	result := Validate(d)

	assert.Equal(t, "Please fill all team leader fields.", result.Reason)
}

func TestValidate_EmailBeforeMobile(t *testing.T) {
	d := validDraft()
	d.Leader.Email = "not-an-email"
	d.Leader.Mobile = "12345"

	result := Validate(d)

	assert.Equal(t, "Please enter a valid email address.", result.Reason)
}

func TestValidate_PartialMemberRejected(t *testing.T) {
	for i := 0; i < MaxMembers; i++ {
		d := validDraft()
		d.Members = make([]TeamMember, i+1)
		d.Members[i] = TeamMember{Name: "A"}

		result := Validate(d)

		assert.False(t, result.Valid)
		assert.Contains(t, result.Reason, "Team Member")
	}
}

func TestValidate_PartialMemberMessageUsesSlotNumber(t *testing.T) {
	d := validDraft()
	d.Members = []TeamMember{
		{Name: "Amit", Branch: "EE", Year: "1st"},
		{Branch: "ME"},
	}

	result := Validate(d)

	assert.Equal(t, "Please complete all fields for Team Member 2 or remove them.", result.Reason)
}

func TestValidate_EmptyMemberSlotAccepted(t *testing.T) {
	d := validDraft()
	d.Members = []TeamMember{
		{},
		{Name: "Amit", Branch: "EE", Year: "1st"},
	}

	result := Validate(d)

	assert.True(t, result.Valid)
}

func TestValidate_NoMembersAccepted(t *testing.T) {
	d := validDraft()
	d.Members = nil

	result := Validate(d)

	assert.True(t, result.Valid)
}

func TestValidate_NoTrimming(t *testing.T) {
	// Whitespace-only values count as filled; emptiness is an exact-string
	// check.
	d := validDraft()
	d.Leader.Name = " "

	result := Validate(d)

	assert.True(t, result.Valid)
}

func TestDraft_AddMemberBoundedAtFour(t *testing.T) {
	d := &Draft{}
	for i := 0; i < MaxMembers; i++ {
		assert.Equal(t, i, d.AddMember())
	}

	assert.Equal(t, -1, d.AddMember())
	assert.Len(t, d.Members, MaxMembers)
}

func TestDraft_RemoveMemberShiftsSlots(t *testing.T) {
	d := &Draft{Members: []TeamMember{
		{Name: "A", Branch: "X", Year: "1st"},
		{Name: "B", Branch: "Y", Year: "2nd"},
		{Name: "C", Branch: "Z", Year: "3rd"},
	}}

	d.RemoveMember(1)

	assert.Len(t, d.Members, 2)
	assert.Equal(t, "C", d.Members[1].Name)

	d.RemoveMember(5) // out of range, ignored
	assert.Len(t, d.Members, 2)
}
