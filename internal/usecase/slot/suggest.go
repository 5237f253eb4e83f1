package slot

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-slots/internal/audit"
	"github.com/BruksfildServices01/meeting-slots/internal/cache"
	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SuggestInput struct {
	Events   []domain.Event
	Duration int
	// Day is the designator as received; anything but a string is not a Friday.
	Day any

	OwnerID   *uint
	RequestID string
}

type SuggestResult struct {
	Slots  []string
	Cached bool
}

// ======================================================
// USE CASE
// ======================================================

type SuggestSlots struct {
	suggester *domain.Suggester
	cache     cache.SlotCache
	audit     Auditor
	log       *zap.Logger
}

func NewSuggestSlots(
	suggester *domain.Suggester,
	slotCache cache.SlotCache,
	auditor Auditor,
	log *zap.Logger,
) *SuggestSlots {
	if slotCache == nil {
		slotCache = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SuggestSlots{
		suggester: suggester,
		cache:     slotCache,
		audit:     auditorOrNop(auditor),
		log:       log,
	}
}

func (uc *SuggestSlots) Execute(
	ctx context.Context,
	in SuggestInput,
) (*SuggestResult, error) {

	friday := domain.IsFridayValue(in.Day)
	key := cache.Key(uc.suggester.Policy(), in.Events, in.Duration, friday)

	// cache failures degrade to a recompute
	if slots, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.log.Warn("slot cache read failed", zap.Error(err))
	} else if ok {
		uc.dispatch(in, len(slots), true)
		return &SuggestResult{Slots: slots, Cached: true}, nil
	}

	slots, err := uc.suggester.SuggestForValue(in.Events, in.Duration, in.Day)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, slots); err != nil {
		uc.log.Warn("slot cache write failed", zap.Error(err))
	}

	uc.dispatch(in, len(slots), false)
	return &SuggestResult{Slots: slots}, nil
}

func (uc *SuggestSlots) dispatch(in SuggestInput, total int, cached bool) {
	uc.audit.Dispatch(audit.Event{
		OwnerID:   in.OwnerID,
		RequestID: in.RequestID,
		Action:    "slots_suggested",
		Entity:    "slots",
		Metadata: map[string]any{
			"events":   len(in.Events),
			"duration": in.Duration,
			"day":      in.Day,
			"total":    total,
			"cached":   cached,
		},
	})
}
