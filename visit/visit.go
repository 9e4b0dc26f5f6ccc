// Package visit keeps the live filter bars of connected pages. Each page load
// mounts a Visit: a course listing, the filter bar reporting to it and the
// click bus the bar listens on. Browser events are replayed into the Visit
// and the new state is rendered back.
package visit

import (
	"sync"
	"time"

	"eduhub/events"
	"eduhub/filterbar"
	"eduhub/listing"
	"eduhub/models"
)

// Visit is one mounted filter bar and its parent listing.
// All access goes through its mutex, so one view handles one event at a time.
type Visit struct {
	ID    string
	Token string

	mu       sync.Mutex
	listing  *listing.Listing
	bar      *filterbar.FilterBar
	clicks   *events.Bus
	lastSeen time.Time
}

// Result is the state a presentation redraws after an event.
type Result struct {
	Bar     filterbar.Snapshot
	Courses []models.Course
	Total   int
	// Anchor is set when the page should scroll to an in-page anchor.
	Anchor string
}

func newVisit(id string, courses []models.Course, now time.Time) (*Visit, error) {
	v := &Visit{
		ID:       id,
		listing:  listing.New(courses),
		clicks:   events.NewBus(),
		lastSeen: now,
	}
	v.bar = filterbar.New(v.listing)
	if err := v.bar.Mount(v.clicks, filterbar.ContainerID); err != nil {
		return nil, err
	}
	return v, nil
}

// Dispatch applies e, then publishes its click if it carries one.
func (v *Visit) Dispatch(e Event) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	anchor, err := e.apply(v.bar)
	if err != nil {
		return Result{}, err
	}
	if e.Type == EventClick || len(e.Path) > 0 {
		v.clicks.PublishClick(events.Click{Path: e.Path})
	}

	r := v.result()
	r.Anchor = anchor
	return r, nil
}

// Current returns the state without changing it
func (v *Visit) Current() Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result()
}

func (v *Visit) result() Result {
	return Result{
		Bar:     v.bar.Snapshot(),
		Courses: v.listing.Matches(),
		Total:   v.listing.Total(),
	}
}

func (v *Visit) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visit) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}

func (v *Visit) unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bar.Unmount()
}

// Mounted reports whether the bar still listens for clicks
func (v *Visit) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bar.Mounted()
}
