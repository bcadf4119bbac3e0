package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"daybook/internal/model"
)

// eventFields is the validated, normalized form of a create/update
// payload. Text fields are trimmed; a whitespace-only value counts as
// empty.
type eventFields struct {
	Title       string
	Description string
	Importance  model.Importance
	DateTime    time.Time
}

// validateEventFields enforces the write-side gate: presence, non-blank
// trimmed text, a numeric importance, and a parseable date-time. Any
// failing field yields the single aggregated ErrValidation; nothing
// touches the store before this passes.
//
// The importance value is only required to be numeric here. Whether it
// names one of the defined levels is enforced by the store's foreign
// key, which stays the single authority for the enum range.
func validateEventFields(title, description, importance, dateTime string, loc *time.Location) (eventFields, error) {
	var f eventFields

	f.Title = strings.TrimSpace(title)
	f.Description = strings.TrimSpace(description)
	if f.Title == "" || f.Description == "" {
		return f, fmt.Errorf("%w: title and description must be non-empty", ErrValidation)
	}

	imp, err := strconv.Atoi(strings.TrimSpace(importance))
	if err != nil {
		return f, fmt.Errorf("%w: importance must be a number", ErrValidation)
	}
	f.Importance = model.Importance(imp)

	dt, ok := parseDateTime(dateTime, loc)
	if !ok {
		return f, fmt.Errorf("%w: invalid or missing date", ErrValidation)
	}
	f.DateTime = dt

	return f, nil
}
