// internal/domain/auth/store.go
package auth

import (
	"errors"
	"sync"
	"time"

	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/sirupsen/logrus"
)

// Storage keys owned by the auth store.
const (
	SessionKey = "loggedInUser" // session tier: Identity of the signed-in user
	UsersKey   = "users"        // durable tier: registered User records
)

// Store holds the current signed-in identity and resolves credentials
// against the preloaded table and the registered table. All operations
// are single synchronous steps; business failures come back as Result
// values, storage failures degrade to absent state.
type Store struct {
	mu        sync.Mutex
	session   storage.Store
	durable   storage.Store
	preloaded []User
	passwords *pkgauth.PasswordManager
	logger    *logrus.Logger

	current *Identity
	loading bool
	lastID  int64
}

// NewStore creates the auth store and rehydrates the current identity
// from session storage. A corrupt persisted session is cleared and the
// store starts unauthenticated.
func NewStore(session, durable storage.Store, preloaded []User, passwords *pkgauth.PasswordManager, logger *logrus.Logger) *Store {
	s := &Store{
		session:   session,
		durable:   durable,
		preloaded: preloaded,
		passwords: passwords,
		logger:    logger,
		loading:   true,
	}

	var identity Identity
	err := storage.GetJSON(session, SessionKey, &identity)
	switch {
	case err == nil:
		s.current = &identity
	case errors.Is(err, storage.ErrNotFound):
		// No session, start unauthenticated.
	default:
		logger.WithError(err).Warn("Failed to load persisted session, clearing it")
		if err := session.Delete(SessionKey); err != nil {
			logger.WithError(err).Warn("Failed to clear corrupt session entry")
		}
	}

	s.loading = false
	return s
}

// Loading reports whether the store is still rehydrating. Construction is
// synchronous, so observers only see false after NewStore returns.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Current returns the signed-in identity, or nil when unauthenticated.
func (s *Store) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// Login resolves the credentials against the preloaded table first, then
// the registered table; first exact match wins. On success the identity
// (password stripped) becomes current and is persisted to the session
// tier. A miss in both tables is a normal failure Result, not an error.
func (s *Store) Login(email, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.preloaded {
		if u.Email == email && s.passwords.Verify(password, u.Password) {
			return s.establishSession(u)
		}
	}

	for _, u := range s.registeredUsers() {
		if u.Email == email && s.passwords.Verify(password, u.Password) {
			return s.establishSession(u)
		}
	}

	return Result{Success: false, Message: "invalid email or password"}
}

// Register appends a new customer to the registered table after checking
// that the email is not present in either table. The comparison is
// case-sensitive, matching Login. The new user is not logged in.
func (s *Store) Register(name, email, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.preloaded {
		if u.Email == email {
			return Result{Success: false, Message: "email is already registered"}
		}
	}

	registered := s.registeredUsers()
	for _, u := range registered {
		if u.Email == email {
			return Result{Success: false, Message: "email is already registered"}
		}
	}

	stored := password
	if s.passwords.HashOnRegister() {
		hashed, err := s.passwords.Hash(password)
		if err != nil {
			s.logger.WithError(err).Error("Failed to hash password during registration")
			return Result{Success: false, Message: "registration failed, please try again"}
		}
		stored = hashed
	}

	registered = append(registered, User{
		ID:       s.nextID(),
		Name:     name,
		Email:    email,
		Password: stored,
		Role:     RoleCustomer,
	})

	if err := storage.SetJSON(s.durable, UsersKey, registered); err != nil {
		s.logger.WithError(err).Error("Failed to persist registered users")
		return Result{Success: false, Message: "registration failed, please try again"}
	}

	return Result{Success: true, Message: "registration successful, you can now log in"}
}

// Logout clears the current identity and the persisted session. Calling
// it without a session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Delete(SessionKey); err != nil {
		s.logger.WithError(err).Warn("Failed to remove persisted session")
	}
	s.current = nil
}

// establishSession is called with the lock held.
func (s *Store) establishSession(u User) Result {
	identity := Identity{
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	s.current = &identity

	if err := storage.SetJSON(s.session, SessionKey, identity); err != nil {
		// Login still succeeds; the session just won't survive a
		// store reconstruction.
		s.logger.WithError(err).Warn("Failed to persist session")
	}

	return Result{
		Success: true,
		User:    &identity,
		Message: "login successful",
	}
}

// registeredUsers is called with the lock held. Corrupt or unavailable
// storage degrades to an empty table.
func (s *Store) registeredUsers() []User {
	var users []User
	err := storage.GetJSON(s.durable, UsersKey, &users)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.WithError(err).Warn("Failed to load registered users")
		return nil
	}
	return users
}

// nextID generates a unique numeric id for a registered user. IDs are
// millisecond timestamps, bumped when two registrations land on the same
// millisecond.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
