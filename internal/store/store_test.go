package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsanfayaz52/noteservice/internal/db"
	"github.com/ahsanfayaz52/noteservice/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dbConn, err := db.InitSQLite(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })
	return store.NewStore(dbConn)
}

func TestCreateUser(t *testing.T) {
	st := newTestStore(t)

	user, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest", user.Password)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)

	_, err = st.CreateUser("alice", "other")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestFindUser(t *testing.T) {
	st := newTestStore(t)

	created, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)

	byName, err := st.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := st.FindUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = st.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.FindUserByID(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNoteRoundTrip(t *testing.T) {
	st := newTestStore(t)

	user, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)

	created, err := st.CreateNote("T", "C", user.ID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)

	got, err := st.FindNoteByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)

	updated, err := st.UpdateNote(created.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)

	got, err = st.FindNoteByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "C2", got.Content)
}

func TestListNotesByOwnerInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	alice, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)
	bob, err := st.CreateUser("bob", "digest")
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err := st.CreateNote(title, "content", alice.ID)
		require.NoError(t, err)
	}
	_, err = st.CreateNote("other", "content", bob.ID)
	require.NoError(t, err)

	list, err := st.ListNotesByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "third", list[2].Title)

	empty, err := st.ListNotesByOwner(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteNote(t *testing.T) {
	st := newTestStore(t)

	user, err := st.CreateUser("alice", "digest")
	require.NoError(t, err)
	note, err := st.CreateNote("T", "C", user.ID)
	require.NoError(t, err)

	require.NoError(t, st.DeleteNote(note.ID))

	_, err = st.FindNoteByID(note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, st.DeleteNote(note.ID), store.ErrNotFound)
}

func TestUpdateNoteNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.UpdateNote(9999, "T", "C")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
