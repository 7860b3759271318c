package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// memSessionRepo is an in-memory SessionRepo with the same conditional
// update and uniqueness rules as the SQL one.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	routes   map[string]models.RoutePoints
	ratings  map[[2]string]*models.Rating
	updates  int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		sessions: make(map[string]*models.Session),
		routes:   make(map[string]models.RoutePoints),
		ratings:  make(map[[2]string]*models.Rating),
	}
}

func (r *memSessionRepo) put(s *models.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
}

func (r *memSessionRepo) CreateSession(_ context.Context, s *models.Session) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.sessions {
		if existing.State.Terminal() {
			continue
		}
		for _, u := range existing.Parties() {
			if u == s.UserAID || u == s.UserBID {
				return nil, apperror.Conflict("a party already has a session in progress")
			}
		}
	}
	cp := *s
	r.sessions[s.ID] = &cp
	return s, nil
}

func (r *memSessionRepo) GetSession(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session %s not found", id)
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) ListActiveByUser(_ context.Context, userID string) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Session
	for _, s := range r.sessions {
		if _, ok := s.SideForUser(userID); ok && !s.State.Terminal() {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSessionRepo) GetRoutePoints(_ context.Context, ids []string) (map[string]models.RoutePoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]models.RoutePoints)
	for _, id := range ids {
		if rp, ok := r.routes[id]; ok {
			out[id] = rp
		}
	}
	return out, nil
}

func (r *memSessionRepo) UpdateState(_ context.Context, id string, from, to models.SessionState, now time.Time) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.State != from {
		return nil, apperror.Conflict("session %s is no longer %s", id, from)
	}
	r.updates++
	s.State = to
	if to == models.SessionStateActive {
		if s.StartedAt == nil {
			started := now
			s.StartedAt = &started
		}
		if s.EndsAt == nil {
			ends := s.StartedAt.Add(time.Duration(s.MaxDurationMinutes) * time.Minute)
			s.EndsAt = &ends
		}
	}
	s.UpdatedAt = now
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) MarkSOS(_ context.Context, id string, now time.Time) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session %s not found", id)
	}
	at := now
	s.SOSAt = &at
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) ListOverrun(_ context.Context, now time.Time) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Session
	for _, s := range r.sessions {
		if s.Overrun(now) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSessionRepo) CreateRating(_ context.Context, rating *models.Rating) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{rating.RaterID, rating.SessionID}
	if _, ok := r.ratings[key]; ok {
		return nil, apperror.Conflict("insert rating: duplicate record")
	}
	r.ratings[key] = rating
	return rating, nil
}

// recordingUpdates collects notifications
type recordingUpdates struct {
	mu    sync.Mutex
	calls [][]string
}

func (u *recordingUpdates) Notify(_ context.Context, userIDs []string, _ models.UpdateType) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls = append(u.calls, append([]string(nil), userIDs...))
}

func (u *recordingUpdates) Deliver(context.Context, models.UpdateBroadcast) int { return 0 }

func (u *recordingUpdates) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

// nopLocations is a LocationRepo that remembers clears
type nopLocations struct {
	mu      sync.Mutex
	cleared []string
}

func (l *nopLocations) StoreLocation(context.Context, string, models.Side, models.SideLocation) error {
	return nil
}

func (l *nopLocations) GetLocations(context.Context, string) (map[models.Side]models.SideLocation, error) {
	return map[models.Side]models.SideLocation{}, nil
}

func (l *nopLocations) ClearLocations(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cleared = append(l.cleared, id)
	return nil
}
