package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/meeting-slots/internal/httperr"
	infraRepo "github.com/BruksfildServices01/meeting-slots/internal/infra/repository"
	"github.com/BruksfildServices01/meeting-slots/internal/middleware"
	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	ListAuditLogs(ctx context.Context, f infraRepo.AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	repo AuditLogLister
}

func NewAuditLogsHandler(repo AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := infraRepo.AuditLogFilter{
		OwnerID: middleware.OwnerID(c),
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	// --------------------------------------------------
	// Optional date range, invalid dates are ignored
	// --------------------------------------------------

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	logs, total, err := h.repo.ListAuditLogs(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
