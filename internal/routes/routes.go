package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-slots/internal/cache"
	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/handlers"
	infraRepo "github.com/BruksfildServices01/meeting-slots/internal/infra/repository"
	"github.com/BruksfildServices01/meeting-slots/internal/middleware"
	ucSlot "github.com/BruksfildServices01/meeting-slots/internal/usecase/slot"
)

type Handlers struct {
	Slots     *handlers.SlotHandler
	Events    *handlers.BusyEventHandler
	AuditLogs *handlers.AuditLogsHandler
}

// Deps are the collaborators shared by every use case.
type Deps struct {
	Repo      domain.Repository
	AuditLogs handlers.AuditLogLister
	Suggester *domain.Suggester
	Cache     cache.SlotCache
	Auditor   ucSlot.Auditor
	Log       *zap.Logger
}

// GormDeps fills the storage side of Deps from a database handle.
func GormDeps(db *gorm.DB) Deps {
	return Deps{
		Repo:      infraRepo.NewBusyEventGormRepository(db),
		AuditLogs: infraRepo.NewAuditLogGormRepository(db),
	}
}

func NewHandlers(d Deps) Handlers {
	// ======================================================
	// USE CASES
	// ======================================================
	suggestUC := ucSlot.NewSuggestSlots(d.Suggester, d.Cache, d.Auditor, d.Log)
	calendarUC := ucSlot.NewCalendarSlots(d.Repo, suggestUC)

	createUC := ucSlot.NewCreateBusyEvent(d.Repo, d.Auditor)
	cancelUC := ucSlot.NewCancelBusyEvent(d.Repo, d.Auditor)
	listUC := ucSlot.NewListBusyEvents(d.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	return Handlers{
		Slots:     handlers.NewSlotHandler(suggestUC, calendarUC),
		Events:    handlers.NewBusyEventHandler(createUC, cancelUC, listUC),
		AuditLogs: handlers.NewAuditLogsHandler(d.AuditLogs),
	}
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/slots/suggest", h.Slots.Suggest)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(jwtSecret))
		{
			secured.GET("/events", h.Events.ListByDate)
			secured.POST("/events", h.Events.Create)
			secured.PATCH("/events/:id/cancel", h.Events.Cancel)

			secured.GET("/slots", h.Slots.ForCalendar)

			secured.GET("/audit-logs", h.AuditLogs.List)
		}
	}
}
