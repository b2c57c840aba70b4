package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrActivityNotFound is returned when no activity is registered under the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotSignedUp is returned when unregistering an email that is not on the roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// Activity is a named extracurricular offering with a capacity and a participant roster.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty roster.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can't mutate registry state through it.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// Catalog is an ordered list of activities. It marshals to a JSON object keyed by
// activity name, keeping insertion order.
type Catalog []*Activity

// Names returns the activity names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, a := range c {
		names = append(names, a.Name)
	}
	return names
}

// Get returns the activity with the given name, or nil.
func (c Catalog) Get(name string) *Activity {
	for _, a := range c {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ActivityRepository holds the activity registry. Implementations must make each
// mutation atomic: the existence and membership checks and the roster change happen
// as one step.
type ActivityRepository interface {
	List(ctx context.Context) (Catalog, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// ActivityCatalogSource loads the set of activities the registry starts with.
type ActivityCatalogSource interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
}

// ActivityService defines the sign-up operations exposed over HTTP.
type ActivityService interface {
	ListActivities(ctx context.Context) (Catalog, error)
	// Signup adds email to the activity roster and returns the confirmation message.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister removes email from the activity roster and returns the confirmation message.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
