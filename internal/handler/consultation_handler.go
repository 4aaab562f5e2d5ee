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

// ConsultationHandler handles consultation intake and the admin
// list/status/export operations.
type ConsultationHandler struct {
	consultationService service.ConsultationService
}

// NewConsultationHandler creates a ConsultationHandler with the given service.
func NewConsultationHandler(consultationService service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// submitConsultationRequest is the expected JSON body for POST /api/consultation.
// "date" carries the preferred consultation date as a free-form string.
type submitConsultationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Submit handles POST /api/consultation.
// name, email, type and date are required; phone and message are optional.
func (h *ConsultationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Type == "" || req.Date == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields: name, email, type, date"})
		return
	}

	c := &model.Consultation{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         &req.Phone,
		Type:          req.Type,
		Message:       &req.Message,
		PreferredDate: req.Date,
	}

	if err := h.consultationService.Submit(r.Context(), c); err != nil {
		slog.Error("consultation submit failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save consultation request"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Consultation request received. We will contact you within 24 hours.",
		"id":      c.ID,
	})
}

// AdminList handles GET /api/admin/consultations. The full unfiltered
// set is returned, newest first; the dashboard filters client-side.
func (h *ConsultationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SubjectFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	consultations, err := h.consultationService.List(r.Context())
	if err != nil {
		slog.Error("consultation list failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch consultations"})
		return
	}

	// Return [] not null for empty lists
	if consultations == nil {
		consultations = []*model.Consultation{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(consultations)
}

// updateStatusRequest is the expected JSON body for the status PATCH.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/consultations/{id}. The status
// is persisted verbatim; a nonexistent id is a no-op that still
// answers success, which existing dashboards depend on.
func (h *ConsultationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.consultationService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		slog.Error("consultation status update failed", "id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to update consultation"})
		return
	}
	if rows == 0 {
		slog.Warn("consultation status update matched no rows", "id", id)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"id":      idStr,
		"status":  req.Status,
	})
}

// Export handles GET /api/admin/consultations/export. Query params
// search, type and status narrow the exported view the same way the
// dashboard's filters do. An empty view answers 204.
func (h *ConsultationHandler) Export(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SubjectFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	consultations, err := h.consultationService.List(r.Context())
	if err != nil {
		slog.Error("consultation export failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch consultations"})
		return
	}

	filtered := console.FilterConsultations(consultations, console.ConsultationFilter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
	})

	csv := console.ConsultationCSV(filtered)
	if csv == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	filename := "consultations_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write([]byte(csv))
}
