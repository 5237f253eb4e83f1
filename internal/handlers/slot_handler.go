package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/httperr"
	"github.com/BruksfildServices01/meeting-slots/internal/middleware"
	ucSlot "github.com/BruksfildServices01/meeting-slots/internal/usecase/slot"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type SlotHandler struct {
	suggest  *ucSlot.SuggestSlots
	calendar *ucSlot.CalendarSlots
}

func NewSlotHandler(
	suggest *ucSlot.SuggestSlots,
	calendar *ucSlot.CalendarSlots,
) *SlotHandler {
	return &SlotHandler{
		suggest:  suggest,
		calendar: calendar,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// SuggestRequest keeps duration and day untyped: a non-integer duration or a
// non-string day is a valid request that degrades, not a bad one.
type SuggestRequest struct {
	Events   []domain.Event `json:"events"`
	Duration any            `json:"duration"`
	Day      any            `json:"day"`
}

type SuggestResponse struct {
	Day      any      `json:"day"`
	Duration int      `json:"duration"`
	Slots    []string `json:"slots"`
	Total    int      `json:"total"`
	Cached   bool     `json:"cached"`
}

////////////////////////////////////////////////////////
// SUGGEST (AD-HOC EVENTS)
////////////////////////////////////////////////////////

func (h *SlotHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	duration := durationMinutes(req.Duration)

	var owner *uint
	if id := middleware.OwnerID(c); id != 0 {
		owner = &id
	}

	res, err := h.suggest.Execute(c.Request.Context(), ucSlot.SuggestInput{
		Events:    req.Events,
		Duration:  duration,
		Day:       req.Day,
		OwnerID:   owner,
		RequestID: middleware.RequestIDFrom(c),
	})
	if err != nil {
		writeSuggestError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{
		Day:      req.Day,
		Duration: duration,
		Slots:    res.Slots,
		Total:    len(res.Slots),
		Cached:   res.Cached,
	})
}

////////////////////////////////////////////////////////
// SUGGEST (STORED CALENDAR)
////////////////////////////////////////////////////////

func (h *SlotHandler) ForCalendar(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Query parameter date is required.")
		return
	}

	// anything but a whole number of minutes yields no slots
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		duration = 0
	}

	res, err := h.calendar.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		date,
		duration,
		middleware.RequestIDFrom(c),
	)
	if err != nil {
		writeSuggestError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{
		Day:      date,
		Duration: duration,
		Slots:    res.Slots,
		Total:    len(res.Slots),
		Cached:   res.Cached,
	})
}

func writeSuggestError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidTimeFormat) {
		httperr.BadRequest(c, "invalid_time_format", err.Error())
		return
	}
	httperr.Business(c, err, "suggest_failed")
}

// durationMinutes accepts only whole, positive JSON numbers; everything else
// maps to 0, which the suggester answers with no slots.
func durationMinutes(v any) int {
	switch d := v.(type) {
	case float64:
		if d != math.Trunc(d) || d <= 0 || d > math.MaxInt32 {
			return 0
		}
		return int(d)
	case json.Number:
		n, err := d.Int64()
		if err != nil || n <= 0 || n > math.MaxInt32 {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}
