package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
)

const keyPrefix = "slots:v1:"

// SlotCache stores computed suggestions. A miss is (nil, false, nil).
type SlotCache interface {
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, slots []string) error
}

type keyMaterial struct {
	Policy   slot.Policy  `json:"policy"`
	Events   []slot.Event `json:"events"`
	Duration int          `json:"duration"`
	Friday   bool         `json:"friday"`
}

// Key derives a cache key from everything that can change the result. The day
// only matters through its Friday classification, so "Fri" and a Friday date
// share an entry.
func Key(p slot.Policy, events []slot.Event, duration int, friday bool) string {
	if events == nil {
		events = []slot.Event{}
	}
	b, err := json.Marshal(keyMaterial{Policy: p, Events: events, Duration: duration, Friday: friday})
	if err != nil {
		// all fields are plain values, marshalling cannot fail
		panic(fmt.Sprintf("cache: marshal key: %v", err))
	}
	sum := sha256.Sum256(b)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]string, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []string) error         { return nil }

var _ SlotCache = Noop{}
