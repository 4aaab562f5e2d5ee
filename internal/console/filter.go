// Package console implements the admin dashboard's view logic:
// free-text search, categorical filters and CSV export of the
// filtered view. The list endpoints stay unfiltered; these helpers
// shape what the operator is currently looking at.
package console

import (
	"strings"

	"github.com/civilconsult/backend/internal/model"
)

// ConsultationFilter narrows a consultation list. Search matches
// name or email, case-insensitive substring. Type and Status are
// exact matches; "" and "all" disable them.
type ConsultationFilter struct {
	Search string
	Type   string
	Status string
}

// ContactFilter narrows a contact-message list. Search additionally
// matches the subject.
type ContactFilter struct {
	Search string
	Status string
}

// FilterConsultations returns the consultations matching f, preserving
// input order.
func FilterConsultations(list []*model.Consultation, f ConsultationFilter) []*model.Consultation {
	var out []*model.Consultation
	for _, c := range list {
		if !matchesSearch(f.Search, c.Name, c.Email) {
			continue
		}
		if !matchesCategory(f.Type, c.Type) {
			continue
		}
		if !matchesCategory(f.Status, c.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterContacts returns the contact messages matching f, preserving
// input order.
func FilterContacts(list []*model.ContactMessage, f ContactFilter) []*model.ContactMessage {
	var out []*model.ContactMessage
	for _, m := range list {
		if !matchesSearch(f.Search, m.Name, m.Email, m.Subject) {
			continue
		}
		if !matchesCategory(f.Status, m.Status) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchesSearch reports whether any field contains term,
// case-insensitive. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesCategory reports whether value passes the categorical filter.
func matchesCategory(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}
