package visit

import (
	"context"
	"errors"
	"sync"
	"time"

	"eduhub/models"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

var (
	// ErrViewNotFound is returned for unknown or already unmounted views.
	ErrViewNotFound = errors.New("view not found")

	// ErrInvalidToken is returned when a token was not issued for the view.
	ErrInvalidToken = errors.New("invalid view token")

	// ErrTooManyViews is returned by Mount when the registry is full.
	ErrTooManyViews = errors.New("too many mounted views")

	// ErrRegistryClosed is returned by Mount once Run has shut the registry down.
	ErrRegistryClosed = errors.New("view registry is closed")
)

// CatalogFunc supplies the courses a new view lists.
type CatalogFunc func() ([]models.Course, error)

// Options configures a Registry.
type Options struct {
	// TTL is how long a view may sit idle before Sweep unmounts it.
	TTL time.Duration

	// TokenSecret signs view tokens. At least MinSecretLength characters.
	TokenSecret string

	// Max caps the number of mounted views. Zero means no cap.
	Max int

	// Catalog defaults to models.ListCourses.
	Catalog CatalogFunc
}

// Registry holds every mounted view by id.
type Registry struct {
	mu      sync.Mutex
	views   map[string]*Visit
	tokens  *tokens
	ttl     time.Duration
	max     int
	closed  bool
	catalog CatalogFunc
	now     func() time.Time
}

// NewRegistry creates an empty registry
func NewRegistry(opts Options) (*Registry, error) {
	tk, err := newTokens(opts.TokenSecret)
	if err != nil {
		return nil, err
	}
	if opts.TTL <= 0 {
		return nil, serr.New("view TTL must be positive")
	}
	if opts.Max < 0 {
		return nil, serr.New("view cap must not be negative")
	}
	if opts.Catalog == nil {
		opts.Catalog = models.ListCourses
	}

	return &Registry{
		views:   make(map[string]*Visit),
		tokens:  tk,
		ttl:     opts.TTL,
		max:     opts.Max,
		catalog: opts.Catalog,
		now:     time.Now,
	}, nil
}

// Mount creates a view over the current catalog and subscribes its bar to clicks.
// It fails with ErrTooManyViews when the cap is reached and ErrRegistryClosed after shutdown.
func (r *Registry) Mount() (*Visit, error) {
	r.mu.Lock()
	err := r.admit()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	courses, err := r.catalog()
	if err != nil {
		return nil, serr.Wrap(err, "failed to load catalog for view")
	}

	now := r.now()
	id := uuid.New().String()
	v, err := newVisit(id, courses, now)
	if err != nil {
		return nil, err
	}
	v.Token, err = r.tokens.issue(id, now)
	if err != nil {
		v.unmount()
		return nil, err
	}

	r.mu.Lock()
	if err := r.admit(); err != nil {
		r.mu.Unlock()
		v.unmount()
		return nil, err
	}
	r.views[id] = v
	r.mu.Unlock()

	logger.Debug("View mounted", "view_id", id, "courses", len(courses))
	return v, nil
}

// admit checks that one more view may be mounted. r.mu must be held.
func (r *Registry) admit() error {
	if r.closed {
		return ErrRegistryClosed
	}
	if r.max > 0 && len(r.views) >= r.max {
		return ErrTooManyViews
	}
	return nil
}

// Get returns the view for id after checking its token, and marks it as used.
func (r *Registry) Get(id, token string) (*Visit, error) {
	r.mu.Lock()
	v, ok := r.views[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrViewNotFound
	}
	if err := r.tokens.verify(token, id); err != nil {
		return nil, err
	}
	v.touch(r.now())
	return v, nil
}

// Unmount removes the view and releases its click subscription.
func (r *Registry) Unmount(id, token string) error {
	if _, err := r.Get(id, token); err != nil {
		return err
	}
	r.remove(id)
	return nil
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if ok {
		v.unmount()
		logger.Debug("View unmounted", "view_id", id)
	}
}

// Sweep unmounts every view idle for longer than the TTL and returns how many it removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []string
	for id, v := range r.views {
		if v.idleSince(now) > r.ttl {
			expired = append(expired, id)
		}
	}
	r.mu.Unlock()

	for _, id := range expired {
		r.remove(id)
	}
	if len(expired) > 0 {
		logger.Info("Swept idle views", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps on every tick until ctx is done, then closes the registry to new
// views and unmounts what is left. It returns once every view is unmounted.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			r.closed = true
			r.mu.Unlock()
			r.UnmountAll()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// UnmountAll drops every view
func (r *Registry) UnmountAll() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.views))
	for id := range r.views {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.remove(id)
	}
}

// Len is the number of mounted views
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
