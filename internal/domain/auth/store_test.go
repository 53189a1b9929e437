// internal/domain/auth/store_test.go
package auth

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/Zevk4/levelup-store/internal/config"
	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testPasswords(hash bool) *pkgauth.PasswordManager {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4
	cfg.Security.HashPasswords = hash
	return pkgauth.NewPasswordManager(cfg)
}

func preloaded() []User {
	return []User{
		{ID: 1, Name: "Carlos Soto", Email: "a@x.com", Password: "secret", Role: RoleAdmin},
		{ID: 2, Name: "Juan Pérez", Email: "cliente@levelup.cl", Password: "cliente123", Role: RoleCustomer},
	}
}

func newTestStore(session, durable storage.Store) *Store {
	return NewStore(session, durable, preloaded(), testPasswords(false), testLogger())
}

func TestLoginPreloadedSuccess(t *testing.T) {
	session := storage.NewMemory()
	store := newTestStore(session, storage.NewMemory())

	result := store.Login("a@x.com", "secret")

	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "a@x.com", result.User.Email)
	assert.Equal(t, RoleAdmin, result.User.Role)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)

	// The persisted projection carries no password field.
	raw, err := session.Get(SessionKey)
	require.NoError(t, err)

	var persisted map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "a@x.com", persisted["email"])
	assert.NotContains(t, persisted, "password")
}

func TestLoginWrongPasswordFails(t *testing.T) {
	session := storage.NewMemory()
	store := newTestStore(session, storage.NewMemory())

	result := store.Login("a@x.com", "wrong")

	assert.False(t, result.Success)
	assert.Nil(t, result.User)
	assert.Equal(t, "invalid email or password", result.Message)
	assert.Nil(t, store.Current())

	_, err := session.Get(SessionKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoginUnknownEmailFails(t *testing.T) {
	store := newTestStore(storage.NewMemory(), storage.NewMemory())

	result := store.Login("nobody@x.com", "secret")

	assert.False(t, result.Success)
	assert.Equal(t, "invalid email or password", result.Message)
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	store := newTestStore(storage.NewMemory(), storage.NewMemory())

	result := store.Login("A@X.COM", "secret")

	assert.False(t, result.Success)
}

func TestRegisterThenLogin(t *testing.T) {
	durable := storage.NewMemory()
	store := newTestStore(storage.NewMemory(), durable)

	result := store.Register("Ana Torres", "ana@x.com", "password1")
	require.True(t, result.Success)

	// Registration does not log the user in.
	assert.Nil(t, store.Current())
	assert.Nil(t, result.User)

	var users []User
	require.NoError(t, storage.GetJSON(durable, UsersKey, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "ana@x.com", users[0].Email)
	assert.Equal(t, RoleCustomer, users[0].Role)
	assert.NotZero(t, users[0].ID)

	login := store.Login("ana@x.com", "password1")
	require.True(t, login.Success)
	assert.Equal(t, RoleCustomer, login.User.Role)
}

func TestRegisterDuplicateInPreloadedTable(t *testing.T) {
	durable := storage.NewMemory()
	store := newTestStore(storage.NewMemory(), durable)

	result := store.Register("Someone", "a@x.com", "whatever1")

	assert.False(t, result.Success)
	assert.Equal(t, "email is already registered", result.Message)

	// The registered table was not touched.
	_, err := durable.Get(UsersKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRegisterDuplicateInRegisteredTable(t *testing.T) {
	store := newTestStore(storage.NewMemory(), storage.NewMemory())

	require.True(t, store.Register("Ana", "ana@x.com", "password1").Success)

	result := store.Register("Other Ana", "ana@x.com", "password2")
	assert.False(t, result.Success)
	assert.Equal(t, "email is already registered", result.Message)
}

func TestRegisteredIDsAreUnique(t *testing.T) {
	durable := storage.NewMemory()
	store := newTestStore(storage.NewMemory(), durable)

	require.True(t, store.Register("A", "a1@x.com", "password1").Success)
	require.True(t, store.Register("B", "b1@x.com", "password1").Success)
	require.True(t, store.Register("C", "c1@x.com", "password1").Success)

	var users []User
	require.NoError(t, storage.GetJSON(durable, UsersKey, &users))
	require.Len(t, users, 3)

	seen := map[int64]bool{}
	for _, u := range users {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestRegisterWithHashingStoresNoPlaintext(t *testing.T) {
	durable := storage.NewMemory()
	store := NewStore(storage.NewMemory(), durable, preloaded(), testPasswords(true), testLogger())

	require.True(t, store.Register("Ana", "ana@x.com", "password1").Success)

	var users []User
	require.NoError(t, storage.GetJSON(durable, UsersKey, &users))
	require.Len(t, users, 1)
	assert.NotEqual(t, "password1", users[0].Password)

	// Login still resolves against the hash, and plaintext preloaded
	// entries keep working.
	assert.True(t, store.Login("ana@x.com", "password1").Success)
	assert.True(t, store.Login("a@x.com", "secret").Success)
}

func TestLogoutIsIdempotent(t *testing.T) {
	session := storage.NewMemory()
	store := newTestStore(session, storage.NewMemory())

	require.True(t, store.Login("a@x.com", "secret").Success)

	store.Logout()
	assert.Nil(t, store.Current())
	_, err := session.Get(SessionKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Logging out without a session is a no-op, not an error.
	store.Logout()
	assert.Nil(t, store.Current())
}

func TestRehydratesSessionOnConstruction(t *testing.T) {
	session := storage.NewMemory()
	durable := storage.NewMemory()

	first := newTestStore(session, durable)
	require.True(t, first.Login("a@x.com", "secret").Success)

	second := newTestStore(session, durable)
	require.False(t, second.Loading())

	current := second.Current()
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)
	assert.Equal(t, RoleAdmin, current.Role)
}

func TestCorruptSessionIsClearedOnConstruction(t *testing.T) {
	session := storage.NewMemory()
	require.NoError(t, session.Set(SessionKey, "{corrupt"))

	store := newTestStore(session, storage.NewMemory())

	assert.Nil(t, store.Current())
	_, err := session.Get(SessionKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCorruptRegisteredTableDegradesToEmpty(t *testing.T) {
	durable := storage.NewMemory()
	require.NoError(t, durable.Set(UsersKey, "not json"))

	store := newTestStore(storage.NewMemory(), durable)

	// Login against the corrupt table misses; preloaded still works.
	assert.False(t, store.Login("ana@x.com", "password1").Success)
	assert.True(t, store.Login("a@x.com", "secret").Success)
}
