// internal/registration/format.go
package registration

import (
	"fmt"
	"strings"
	"time"

	"club-portal/internal/models"
)

// FormatTeamMessage renders the human-readable notification body for a team
// registration. The message is independent of the storage record shape:
// members here are numbered by their position among complete members only.
// Missing context (a nil event, an unparseable date) omits lines rather than
// failing; the function never errors.
func FormatTeamMessage(event *models.Event, d *Draft) string {
	var b strings.Builder

	b.WriteString("🎟️ *New Event Registration*\n\n")

	if event != nil {
		if event.Title != "" {
			fmt.Fprintf(&b, "*Event:* %s\n", event.Title)
		}
		if date := formatDate(event.Date); date != "" {
			fmt.Fprintf(&b, "*Date:* %s\n", date)
		}
		b.WriteString("\n")
	}

	b.WriteString("👤 *TEAM LEADER:*\n")
	fmt.Fprintf(&b, "Name: %s\n", d.Leader.Name)
	fmt.Fprintf(&b, "Branch: %s\n", d.Leader.Branch)
	fmt.Fprintf(&b, "Year: %s\n", d.Leader.Year)
	fmt.Fprintf(&b, "Email: %s\n", d.Leader.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", d.Leader.Mobile)

	n := 0
	for _, m := range d.Members {
		if !m.Complete() {
			continue
		}
		if n == 0 {
			b.WriteString("\n👥 *TEAM MEMBERS:*\n")
		}
		n++
		fmt.Fprintf(&b, "%d. %s - %s - %s\n", n, m.Name, m.Branch, m.Year)
	}

	return b.String()
}

func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}
