package reconcile

import (
	"sync"
	"time"
)

// Workspace is the upload and report state of one session.
type Workspace struct {
	Store *Store
	Cache *Cache

	lastSeen time.Time
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		Store: NewStore(),
		Cache: NewCache(),
	}
}

// Reconcile runs the engine over the workspace datasets and caches the
// result. On failure the previously cached result is left untouched.
func (w *Workspace) Reconcile(branch string, opts Options) (*Result, error) {
	inventory, _ := w.Store.Inventory()
	orders, _ := w.Store.Orders()

	result, err := Reconcile(inventory, orders, branch, opts)
	if err != nil {
		return nil, err
	}

	w.Cache.Store(result)
	return result, nil
}

// Sessions maps session identifiers to workspaces.
// Workspaces idle for longer than the TTL are evicted on the next access.
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*Workspace
	now   func() time.Time
}

// NewSessions creates a registry. A zero ttl keeps workspaces forever.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:   ttl,
		items: make(map[string]*Workspace),
		now:   time.Now,
	}
}

// Get returns the workspace of id, creating it when needed.
func (s *Sessions) Get(id string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	ws, ok := s.items[id]
	if !ok {
		ws = NewWorkspace()
		s.items[id] = ws
	}
	ws.lastSeen = now
	return ws
}

// Len returns the number of live workspaces.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
	return len(s.items)
}

func (s *Sessions) evictLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, ws := range s.items {
		if now.Sub(ws.lastSeen) > s.ttl {
			delete(s.items, id)
		}
	}
}
