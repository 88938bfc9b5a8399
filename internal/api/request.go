package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/noozes/sleepcalc/internal/domain"
	"github.com/noozes/sleepcalc/internal/sleep"
)

const maxBodyBytes = 1 << 12

// timeRequest is the body of the wake-up and bedtime endpoints.
type timeRequest struct {
	Time string `json:"time" validate:"required,clock"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// decodeTime reads and validates the {"time": "HH:MM"} body. Every failure
// is reported as sleep.ErrInvalidInput.
func (h *Handler) decodeTime(r *http.Request) (string, error) {
	var req timeRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: empty body", sleep.ErrInvalidInput)
		}
		return "", fmt.Errorf("%w: decode body: %w", sleep.ErrInvalidInput, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", sleep.ErrInvalidInput, err)
	}
	return req.Time, nil
}

// wantDetails reports whether the caller asked for per-suggestion details.
func wantDetails(r *http.Request) bool {
	v := r.URL.Query().Get("details")
	if v == "" {
		return false
	}
	ok, err := strconv.ParseBool(v)
	return err == nil && ok
}
