package slot

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-slots/internal/audit"
	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

type fakeRepo struct {
	mu      sync.Mutex
	nextID  uint
	events  map[uint]*models.BusyEvent
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[uint]*models.BusyEvent{}}
}

func (r *fakeRepo) CreateBusyEvent(_ context.Context, ev *models.BusyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ev.ID = r.nextID
	cp := *ev
	r.events[ev.ID] = &cp
	return nil
}

func (r *fakeRepo) GetBusyEventForOwner(_ context.Context, eventID, ownerID uint) (*models.BusyEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[eventID]
	if !ok || ev.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ev
	return &cp, nil
}

func (r *fakeRepo) UpdateBusyEvent(_ context.Context, ev *models.BusyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ev
	r.events[ev.ID] = &cp
	return nil
}

func (r *fakeRepo) ListBusyEventsForDay(_ context.Context, ownerID uint, date string) ([]models.BusyEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.BusyEvent
	for id := uint(1); id <= r.nextID; id++ {
		ev, ok := r.events[id]
		if ok && ev.OwnerID == ownerID && ev.Date == date {
			out = append(out, *ev)
		}
	}
	return out, nil
}

type memCache struct {
	data map[string][]string
	gets int
	err  error
}

func newMemCache() *memCache { return &memCache{data: map[string][]string{}} }

func (c *memCache) Get(_ context.Context, key string) ([]string, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, slots []string) error {
	if c.err != nil {
		return c.err
	}
	c.data[key] = slots
	return nil
}

type recordingAuditor struct {
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
