package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedir/model"
)

func TestSessionRepoLifecycle(t *testing.T) {
	repo := NewSessionRepo(openTestDB(t, "sessionlife", &model.Session{}))

	session, err := repo.Create(7, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, uint(7), session.UserID)

	got, err := repo.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)

	require.NoError(t, repo.Delete(session.ID))

	_, err = repo.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is fine.
	assert.NoError(t, repo.Delete(session.ID))
}

func TestSessionRepoExpiry(t *testing.T) {
	repo := NewSessionRepo(openTestDB(t, "sessionexp", &model.Session{}))

	session, err := repo.Create(7, -time.Minute)
	require.NoError(t, err)

	// An expired session is anonymous, and the row is cleaned up on read.
	_, err = repo.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepoUnknownID(t *testing.T) {
	repo := NewSessionRepo(openTestDB(t, "sessionmissing", &model.Session{}))

	_, err := repo.Get("no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}
