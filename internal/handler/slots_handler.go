package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// isoMillis matches JavaScript's Date.toISOString output, which the
// booking form was built against.
const isoMillis = "2006-01-02T15:04:05.000Z"

// SlotsHandler serves the synthetic consultation slots shown by the
// booking form. Slots are generated relative to the current time; no
// real calendar backs them.
type SlotsHandler struct {
	now func() time.Time
}

// NewSlotsHandler creates a SlotsHandler on the real clock.
func NewSlotsHandler() *SlotsHandler {
	return &SlotsHandler{now: time.Now}
}

type slot struct {
	ID    int    `json:"id"`
	Time  string `json:"time"`
	Label string `json:"label"`
}

// The fixed offsets and labels the frontend expects. Labels describe
// the day, not the exact offset; kept as the form has always shown them.
var slotDefs = []struct {
	offset time.Duration
	label  string
}{
	{24 * time.Hour, "Tomorrow 10:00 AM"},
	{25 * time.Hour, "Tomorrow 11:00 AM"},
	{26 * time.Hour, "Tomorrow 12:00 PM"},
	{48 * time.Hour, "Day after tomorrow 09:00 AM"},
	{49 * time.Hour, "Day after tomorrow 10:00 AM"},
	{72 * time.Hour, "3 days from now 02:00 PM"},
}

// List handles GET /api/slots.
func (h *SlotsHandler) List(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	slots := make([]slot, len(slotDefs))
	for i, def := range slotDefs {
		slots[i] = slot{
			ID:    i + 1,
			Time:  now.Add(def.offset).UTC().Format(isoMillis),
			Label: def.label,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(slots)
}
