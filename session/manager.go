package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultStorageKey is the well-known storage key the session record is
// persisted under.
const DefaultStorageKey = "user"

// Manager owns the process-wide authentication state and its persisted
// mirror. Login checks credentials against exactly one accepted pair; a
// successful login writes the identity record to storage, logout removes
// it, and Rehydrate restores state from it at startup.
//
// No Manager operation returns an error to its caller: the only observable
// login failure is a LoginResult with Success false, and storage failures
// are logged and swallowed — the in-memory state stays authoritative for
// the process lifetime.
type Manager struct {
	mu        sync.Mutex
	storage   Storage
	key       string
	accepted  Credentials
	validator *Validator
	current   Session
	log       zerolog.Logger
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithStorageKey overrides the storage key the session record is kept under.
func WithStorageKey(key string) ManagerOption {
	return func(m *Manager) {
		m.key = key
	}
}

// WithLogger sets the logger used for storage-failure warnings.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager initializes a Manager with the storage collaborator and the
// single accepted credential pair.
func NewManager(storage Storage, accepted Credentials, options ...ManagerOption) (*Manager, error) {
	if storage == nil {
		return nil, errors.New("[NewManager] storage is required")
	}
	if accepted.Email == "" || accepted.Password == "" {
		return nil, errors.New("[NewManager] accepted credential pair is required")
	}

	m := &Manager{
		storage:   storage,
		key:       DefaultStorageKey,
		accepted:  accepted,
		validator: NewValidator(),
		log:       zerolog.Nop(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m, nil
}

// Rehydrate restores the session from the persisted record. Absent or
// malformed records leave the session at its empty default; it never
// returns an error to its caller. Call once at process start, before any
// view is selected.
func (m *Manager) Rehydrate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.storage.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			m.log.Warn().Err(err).Msg("session rehydrate: storage read failed")
		}
		return
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil || identity.Email == "" {
		// Malformed record is treated as absent
		return
	}

	m.current = Session{Authenticated: true, Identity: &identity}
}

// Login validates credentials against the accepted pair. On match it sets
// the session, persists the identity record, and reports success; on any
// failure the session is left unchanged and the result carries the message
// to surface. Repeating a mismatched login yields the same result and no
// state change.
func (m *Manager) Login(ctx context.Context, creds Credentials) LoginResult {
	if msg := m.validator.ValidateCredentials(creds); msg != "" {
		return LoginResult{Success: false, Message: msg}
	}

	if !m.matches(creds) {
		return LoginResult{
			Success: false,
			Message: fmt.Sprintf("Invalid credentials. Use %s / %s", m.accepted.Email, m.accepted.Password),
		}
	}

	identity := Identity{Email: creds.Email}

	m.mu.Lock()
	m.current = Session{Authenticated: true, Identity: &identity}
	m.mu.Unlock()

	record, err := json.Marshal(identity)
	if err == nil {
		err = m.storage.Set(ctx, m.key, record)
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("session login: persisting record failed")
	}

	return LoginResult{Success: true}
}

// Logout clears the session and removes the persisted record. Calling it
// while already logged out is a no-op with the same end state.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	if err := m.storage.Remove(ctx, m.key); err != nil {
		m.log.Warn().Err(err).Msg("session logout: removing record failed")
	}
}

// Authenticated reports whether a user is currently logged in.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Authenticated
}

// Identity returns the authenticated identity, or false when no user is
// logged in.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current.Authenticated || m.current.Identity == nil {
		return Identity{}, false
	}
	return *m.current.Identity, true
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := Session{Authenticated: m.current.Authenticated}
	if m.current.Identity != nil {
		identity := *m.current.Identity
		out.Identity = &identity
	}
	return out
}

// matches compares both fields in constant time. The accepted pair is a
// fixed test credential, not a secret store: the contract is equality only,
// no hashing.
func (m *Manager) matches(creds Credentials) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(m.accepted.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(m.accepted.Password))
	return emailOK&passwordOK == 1
}
