package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_HydratesPersistedSubset(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(Snapshot{
		Token: "t",
		User:  &SessionUser{ID: "u1", DisplayName: "Jo", Email: "jo@example.com", Role: "user"},
	}))

	store, err := NewStore(storage)
	require.NoError(t, err)

	sess := store.Current()
	assert.Equal(t, "t", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "u1", sess.User.ID)

	// UI-only fields always reset to defaults, never read from storage.
	assert.False(t, sess.SettingsModalOpen)
	assert.Equal(t, TabAccount, sess.ActiveSettingsTab)
	assert.False(t, sess.LogoutConfirmOpen)
}

func TestStore_PersistsExactlyTokenAndUser(t *testing.T) {
	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)

	store.SetToken("t")
	store.SetUser(&SessionUser{ID: "u1"})
	store.OpenSettingsModal(TabSettings)
	store.OpenLogoutConfirm()

	snap, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "t", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "u1", snap.User.ID)

	// A fresh store over the same storage sees clean UI state.
	fresh, err := NewStore(storage)
	require.NoError(t, err)
	assert.False(t, fresh.Current().SettingsModalOpen)
	assert.False(t, fresh.Current().LogoutConfirmOpen)
}

func TestStore_LogoutClearsIdentityAndConfirmFlag(t *testing.T) {
	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)

	store.SetToken("t")
	store.SetUser(&SessionUser{ID: "u1"})
	store.OpenLogoutConfirm()

	store.Logout()

	sess := store.Current()
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
	assert.False(t, sess.LogoutConfirmOpen)

	snap, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestStore_NotifiesSubscribers(t *testing.T) {
	store, err := NewStore(NewMemoryStorage())
	require.NoError(t, err)

	var seen []Session
	store.Subscribe(func(s Session) { seen = append(seen, s) })

	store.SetToken("t")
	store.OpenSettingsModal(TabNiyam)

	require.Len(t, seen, 2)
	assert.Equal(t, "t", seen[0].Token)
	assert.True(t, seen[1].SettingsModalOpen)
	assert.Equal(t, TabNiyam, seen[1].ActiveSettingsTab)
}

func TestStore_ModalDefaultsToAccountTab(t *testing.T) {
	store, err := NewStore(NewMemoryStorage())
	require.NoError(t, err)

	store.OpenSettingsModal("")
	assert.Equal(t, TabAccount, store.Current().ActiveSettingsTab)

	store.SetActiveSettingsTab(TabNotifications)
	assert.Equal(t, TabNotifications, store.Current().ActiveSettingsTab)

	store.CloseSettingsModal()
	assert.False(t, store.Current().SettingsModalOpen)
}

// failingStorage loads an empty snapshot but refuses every save.
type failingStorage struct{}

func (failingStorage) Load() (*Snapshot, error) { return &Snapshot{}, nil }
func (failingStorage) Save(Snapshot) error      { return errors.New("disk full") }

func TestStore_MutationSurvivesPersistenceFailure(t *testing.T) {
	store, err := NewStore(failingStorage{})
	require.NoError(t, err)

	var notified int
	store.Subscribe(func(Session) { notified++ })

	store.SetToken("t")
	store.SetUser(&SessionUser{ID: "u1"})

	// The in-memory session stays authoritative and subscribers still fire;
	// the save failure is logged, not propagated.
	sess := store.Current()
	assert.Equal(t, "t", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "u1", sess.User.ID)
	assert.Equal(t, 2, notified)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	storage := NewFileStorage(path)

	// Missing file reads as an empty snapshot.
	snap, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)

	require.NoError(t, storage.Save(Snapshot{Token: "t", User: &SessionUser{ID: "u1"}}))

	reloaded, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "t", reloaded.Token)
	require.NotNil(t, reloaded.User)
	assert.Equal(t, "u1", reloaded.User.ID)
}
