package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ExportICal handles GET /events/ical
// Serializes all of the caller's events as an iCalendar feed so they
// can be subscribed to from an external calendar client. Importance
// maps onto the ICS PRIORITY property (1 is highest there, so the
// scale is inverted).
func (h *EventHandler) ExportICal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	events, err := h.svc.ResolveAndQuery(r.Context(), userID, "", "", "")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	now := time.Now().UTC()

	for _, e := range events {
		ev := cal.AddEvent(fmt.Sprintf("%d@daybook", e.ID))
		ev.SetDtStampTime(now)
		ev.SetCreatedTime(e.CreatedAt)
		ev.SetStartAt(e.DateTime)
		ev.SetEndAt(e.DateTime)
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Description)
		ev.SetProperty(ics.ComponentProperty("PRIORITY"), strconv.Itoa(10-2*int(e.Importance)))
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="daybook.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, cal.Serialize())
}
