package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedir/model"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	repo := NewUserRepo(openTestDB(t, "usercreate", &model.User{}))

	user := &model.User{
		Email:        "Angela@Example.com",
		Name:         "Angela",
		PasswordHash: "pbkdf2:sha256:600000$abcd1234$deadbeef",
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)
	// Email is normalized on the way in.
	assert.Equal(t, "angela@example.com", user.Email)

	got, err := repo.GetByEmail("  angela@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Angela", got.Name)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	repo := NewUserRepo(openTestDB(t, "userdup", &model.User{}))

	require.NoError(t, repo.Create(&model.User{Email: "a@example.com", Name: "A", PasswordHash: "x"}))

	err := repo.Create(&model.User{Email: "A@Example.com", Name: "Another A", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepoMissing(t *testing.T) {
	repo := NewUserRepo(openTestDB(t, "usermissing", &model.User{}))

	_, err := repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
