package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/civilconsult/backend/internal/console"
	"github.com/civilconsult/backend/internal/model"
	"github.com/civilconsult/backend/internal/service"
	"github.com/civilconsult/backend/pkg/auth"
)

// ContactHandler handles contact-form intake and the admin
// list/status/export operations.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitContactRequest is the expected JSON body for POST /api/contact.
type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email, subject and message are required; phone is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields: name, email, subject, message"})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   &req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.Error("contact submit failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save contact message"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Message received. We will get back to you within 24 hours.",
		"id":      msg.ID,
	})
}

// AdminList handles GET /api/admin/contacts. The full unfiltered set
// is returned, newest first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SubjectFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch contact messages"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messages)
}

// UpdateStatus handles PATCH /api/admin/contacts/{id}. Same contract
// as the consultation PATCH: verbatim status, success-shaped no-op on
// a missing id.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SubjectFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	rows, err := h.contactService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		slog.Error("contact status update failed", "id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to update contact message"})
		return
	}
	if rows == 0 {
		slog.Warn("contact status update matched no rows", "id", id)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"id":      idStr,
		"status":  req.Status,
	})
}

// Export handles GET /api/admin/contacts/export with optional search
// and status query params.
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SubjectFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact export failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch contact messages"})
		return
	}

	filtered := console.FilterContacts(messages, console.ContactFilter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	})

	csv := console.ContactCSV(filtered)
	if csv == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	filename := "contacts_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write([]byte(csv))
}
