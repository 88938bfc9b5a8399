package api

import (
	"errors"
	"net/http"

	"github.com/noozes/sleepcalc/internal/domain"
	"github.com/noozes/sleepcalc/internal/sleep"
)

// InvalidTimeMessage is returned to clients for any unusable time input.
const InvalidTimeMessage = "Invalid time format. Please use HH:MM."

type suggestionDetail struct {
	Time       string  `json:"time"`
	Cycles     int     `json:"cycles"`
	SleepHours float64 `json:"sleep_hours"`
}

type suggestionsResponse struct {
	Suggestions []string           `json:"suggestions"`
	Details     []suggestionDetail `json:"details,omitempty"`
}

// CalculateFromNow returns wake-up times for going to bed at the current server time.
func (h *Handler) CalculateFromNow(w http.ResponseWriter, r *http.Request) {
	h.writeSuggestions(w, r, h.svc.FromNow(r.Context()))
}

// CalculateWakeUp returns wake-up times for the bedtime in the request body.
func (h *Handler) CalculateWakeUp(w http.ResponseWriter, r *http.Request) {
	value, err := h.decodeTime(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	suggestions, err := h.svc.WakeUpFrom(r.Context(), value)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSuggestions(w, r, suggestions)
}

// CalculateBedtime returns bedtimes for the wake-up time in the request body,
// earliest bedtime first.
func (h *Handler) CalculateBedtime(w http.ResponseWriter, r *http.Request) {
	value, err := h.decodeTime(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	suggestions, err := h.svc.BedtimeFor(r.Context(), value)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSuggestions(w, r, suggestions)
}

func (h *Handler) writeSuggestions(w http.ResponseWriter, r *http.Request, suggestions []domain.Suggestion) {
	resp := suggestionsResponse{Suggestions: sleep.Format(suggestions)}
	if wantDetails(r) {
		resp.Details = make([]suggestionDetail, len(suggestions))
		for i, s := range suggestions {
			resp.Details[i] = suggestionDetail{
				Time:       s.Time.String(),
				Cycles:     s.Cycles,
				SleepHours: sleep.SleepHours(s.Cycles),
			}
		}
	}
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, sleep.ErrInvalidInput) {
		h.logger.WarnContext(r.Context(), "Rejected time input", "path", r.URL.Path, "error", err)
		Error(w, http.StatusBadRequest, InvalidTimeMessage)
		return
	}
	h.logger.ErrorContext(r.Context(), "Calculation failed", "path", r.URL.Path, "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}
