// internal/registration/format_test.go
package registration

import (
	"strings"
	"testing"

	"club-portal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatTeamMessage_FullContext(t *testing.T) {
	event := &models.Event{Title: "Hackathon", Date: "2026-03-14"}

	msg := FormatTeamMessage(event, validDraft())

	assert.Contains(t, msg, "*New Event Registration*")
	assert.Contains(t, msg, "*Event:* Hackathon")
	assert.Contains(t, msg, "*Date:* Mar 14, 2026")
	assert.Contains(t, msg, "*TEAM LEADER:*")
	assert.Contains(t, msg, "Name: Jane Doe")
	assert.Contains(t, msg, "Email: jane@x.com")
	assert.Contains(t, msg, "Mobile: 9876543210")
	assert.Contains(t, msg, "*TEAM MEMBERS:*")
	assert.Contains(t, msg, "1. Amit - EE - 1st")
}

func TestFormatTeamMessage_NilEventOmitsEventLines(t *testing.T) {
	msg := FormatTeamMessage(nil, validDraft())

	assert.NotContains(t, msg, "*Event:*")
	assert.NotContains(t, msg, "*Date:*")
	assert.Contains(t, msg, "*TEAM LEADER:*")
}

func TestFormatTeamMessage_NoCompleteMembersOmitsBlock(t *testing.T) {
	d := validDraft()
	d.Members = []TeamMember{{}}

	msg := FormatTeamMessage(nil, d)

	assert.NotContains(t, msg, "TEAM MEMBERS")
}

func TestFormatTeamMessage_MembersNumberedCompactly(t *testing.T) {
	// Unlike the stored record, the message numbers only complete members.
	d := validDraft()
	d.Members = []TeamMember{
		{Name: "Amit", Branch: "EE", Year: "1st"},
		{},
		{Name: "Chitra", Branch: "ME", Year: "3rd"},
	}

	msg := FormatTeamMessage(nil, d)

	assert.Contains(t, msg, "1. Amit - EE - 1st")
	assert.Contains(t, msg, "2. Chitra - ME - 3rd")
	assert.NotContains(t, msg, "3.")
}

func TestFormatTeamMessage_UnparseableDateKeptVerbatim(t *testing.T) {
	event := &models.Event{Title: "Expo", Date: "sometime soon"}

	msg := FormatTeamMessage(event, validDraft())

	assert.Contains(t, msg, "*Date:* sometime soon")
}

func TestFormatTeamMessage_LeaderBlockListsAllFiveFields(t *testing.T) {
	msg := FormatTeamMessage(nil, validDraft())

	for _, line := range []string{"Name:", "Branch:", "Year:", "Email:", "Mobile:"} {
		assert.True(t, strings.Contains(msg, line), "missing %q", line)
	}
}
