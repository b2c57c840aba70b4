package memory

import (
	"context"
	"fmt"
	"sync"

	"activitysignup/internal/domain"
)

// activityRepository is the in-process activity registry. The key set is fixed at
// construction; only rosters change afterwards.
type activityRepository struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*domain.Activity
}

// NewActivityRepository builds a registry seeded with catalog. Activities keep the
// catalog order. Duplicate names are rejected.
func NewActivityRepository(catalog domain.Catalog) (domain.ActivityRepository, error) {
	r := &activityRepository{
		order:  make([]string, 0, len(catalog)),
		byName: make(map[string]*domain.Activity, len(catalog)),
	}
	for _, a := range catalog {
		if a == nil {
			continue
		}
		if _, ok := r.byName[a.Name]; ok {
			return nil, fmt.Errorf("duplicate activity %q in catalog", a.Name)
		}
		c := a.Clone()
		if c.Participants == nil {
			c.Participants = []string{}
		}
		r.order = append(r.order, c.Name)
		r.byName[c.Name] = c
	}
	return r, nil
}

func (r *activityRepository) List(ctx context.Context) (domain.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(domain.Catalog, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Clone())
	}
	return out, nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}
