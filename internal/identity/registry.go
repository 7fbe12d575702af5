// ABOUTME: Registry holds the resident roster and the active-session pointer
// ABOUTME: Loads from the blob store on init and writes through on every mutation

package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/blobstore"
)

// Blob store keys. The roster is a JSON array of User; the active user
// is a bare id string.
const (
	rosterKey     = "community.roster"
	activeUserKey = "community.active_user"
)

// ErrUnknownUser is returned when an id does not resolve to a roster member
var ErrUnknownUser = errors.New("unknown user")

// Registry is the roster of users plus the active-session pointer.
// Every mutation writes through to the blob store immediately; a failed
// persist is logged by the store and the in-memory change stands.
type Registry struct {
	mu     sync.RWMutex
	store  blobstore.Store
	logger *slog.Logger

	users  []*User
	active *User
}

// NewRegistry creates a Registry backed by the given blob store
func NewRegistry(store blobstore.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		store:  store,
		logger: logger.With("component", "identity"),
	}
}

// Initialize loads the roster and active-user pointer from the blob
// store, seeding the built-in roster when nothing usable is stored.
// It never fails: corrupt or absent data degrades to the seed defaults.
func (r *Registry) Initialize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = r.loadRoster()
	r.active = r.loadActiveUser()

	r.logger.Info("identity registry initialized",
		"users", len(r.users),
		"active_user", activeID(r.active))
}

// loadRoster returns the persisted roster or the built-in seed
func (r *Registry) loadRoster() []*User {
	raw, ok := r.store.Load(rosterKey)
	if !ok {
		r.logger.Info("no stored roster, seeding built-in residents")
		return seedRoster()
	}

	var users []*User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		r.logger.Warn("stored roster unreadable, seeding built-in residents", "error", err)
		return seedRoster()
	}
	if len(users) == 0 {
		return seedRoster()
	}
	return users
}

// loadActiveUser resolves the persisted active-user id against the
// roster. Falls back to the first roster member, or nil for an empty roster.
func (r *Registry) loadActiveUser() *User {
	if id, ok := r.store.Load(activeUserKey); ok {
		for _, u := range r.users {
			if u.ID == id {
				return u
			}
		}
		r.logger.Warn("stored active user not in roster", "user_id", id)
	}

	if len(r.users) > 0 {
		return r.users[0]
	}
	return nil
}

// Users returns a snapshot of the roster in creation order
func (r *Registry) Users() []*User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*User, len(r.users))
	copy(users, r.users)
	return users
}

// ActiveUser returns the currently active user, or nil when no session exists
func (r *Registry) ActiveUser() *User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Lookup returns the roster member with the given id
func (r *Registry) Lookup(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
}

// AddUser registers a new resident and makes them the active user
// (registration implies immediate login). Input is assumed pre-validated
// by the caller: name non-empty after trimming, houseNumber positive.
func (r *Registry) AddUser(name string, houseNumber int) *User {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	user := &User{
		ID:          id,
		Name:        strings.TrimSpace(name),
		HouseNumber: houseNumber,
		AvatarURL:   "https://i.pravatar.cc/150?u=" + id,
		Role:        RoleUser,
	}

	r.users = append(r.users, user)
	r.active = user
	r.persistRoster()
	r.persistActiveUser()

	r.logger.Info("user registered", "user_id", user.ID, "name", user.Name, "house", user.HouseNumber)
	return user
}

// SetActiveUser switches the session to the roster member with the given id
func (r *Registry) SetActiveUser(id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			r.active = u
			r.persistActiveUser()
			r.logger.Info("active user switched", "user_id", id)
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
}

// persistRoster writes the roster through to the blob store.
// Must be called with mu held.
func (r *Registry) persistRoster() {
	data, err := json.Marshal(r.users)
	if err != nil {
		r.logger.Warn("marshaling roster failed", "error", err)
		return
	}
	r.store.Save(rosterKey, string(data))
}

// persistActiveUser writes the active-user id through to the blob store.
// Must be called with mu held.
func (r *Registry) persistActiveUser() {
	if r.active == nil {
		r.store.Remove(activeUserKey)
		return
	}
	r.store.Save(activeUserKey, r.active.ID)
}

func activeID(u *User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
