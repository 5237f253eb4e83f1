package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/meeting-slots/internal/httperr"
	"github.com/BruksfildServices01/meeting-slots/internal/httpresp"
	"github.com/BruksfildServices01/meeting-slots/internal/middleware"
	ucSlot "github.com/BruksfildServices01/meeting-slots/internal/usecase/slot"
)

type BusyEventHandler struct {
	createUC *ucSlot.CreateBusyEvent
	cancelUC *ucSlot.CancelBusyEvent
	listUC   *ucSlot.ListBusyEvents
}

func NewBusyEventHandler(
	createUC *ucSlot.CreateBusyEvent,
	cancelUC *ucSlot.CancelBusyEvent,
	listUC *ucSlot.ListBusyEvents,
) *BusyEventHandler {
	return &BusyEventHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

type CreateBusyEventRequest struct {
	Date  string `json:"date" binding:"required"`  // YYYY-MM-DD
	Start string `json:"start" binding:"required"` // HH:MM
	End   string `json:"end" binding:"required"`   // HH:MM
	Title string `json:"title"`
}

func (h *BusyEventHandler) Create(c *gin.Context) {
	var req CreateBusyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ev, err := h.createUC.Execute(c.Request.Context(), ucSlot.CreateBusyEventInput{
		OwnerID:   middleware.OwnerID(c),
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Title:     req.Title,
		RequestID: middleware.RequestIDFrom(c),
	})
	if err != nil {
		httperr.Business(c, err, "create_event_failed")
		return
	}

	httpresp.Created(c, ev)
}

func (h *BusyEventHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Query parameter date is required.")
		return
	}

	events, err := h.listUC.Execute(c.Request.Context(), middleware.OwnerID(c), date)
	if err != nil {
		httperr.Business(c, err, "list_events_failed")
		return
	}

	httpresp.List(c, events)
}

func (h *BusyEventHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	ev, err := h.cancelUC.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		uint(id),
		middleware.RequestIDFrom(c),
	)
	if err != nil {
		httperr.Business(c, err, "cancel_event_failed")
		return
	}

	httpresp.OK(c, ev)
}
