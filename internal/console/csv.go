package console

import (
	"strconv"
	"strings"
	"time"

	"github.com/civilconsult/backend/internal/model"
)

// Export column orders, matching the JSON field order of each record.
var (
	consultationColumns = []string{"id", "name", "email", "phone", "type", "message", "preferred_date", "created_at", "status"}
	contactColumns      = []string{"id", "name", "email", "phone", "subject", "message", "created_at", "status"}
)

// ConsultationCSV encodes consultations for export. Returns "" when
// the list is empty; callers treat that as nothing to export.
func ConsultationCSV(list []*model.Consultation) string {
	if len(list) == 0 {
		return ""
	}
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			deref(c.Phone),
			c.Type,
			deref(c.Message),
			c.PreferredDate,
			c.CreatedAt.Format(time.RFC3339),
			c.Status,
		}
	}
	return encode(consultationColumns, rows)
}

// ContactCSV encodes contact messages for export.
func ContactCSV(list []*model.ContactMessage) string {
	if len(list) == 0 {
		return ""
	}
	rows := make([][]string, len(list))
	for i, m := range list {
		rows[i] = []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.Email,
			deref(m.Phone),
			m.Subject,
			m.Message,
			m.CreatedAt.Format(time.RFC3339),
			m.Status,
		}
	}
	return encode(contactColumns, rows)
}

// encode joins header and rows with the dashboard's historical quoting
// rule: only fields containing a comma are quoted (embedded quotes
// doubled inside them); everything else is emitted verbatim, including
// bare double quotes and newlines. Kept bug-compatible with existing
// export consumers; encoding/csv would quote more aggressively.
func encode(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = field(v)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// field applies the comma-only quoting rule to a single value.
func field(v string) string {
	if strings.Contains(v, ",") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// deref renders a nullable field, empty when absent.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
