package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cafedir/model"
)

// SessionRepo persists login sessions. A session row is the source of
// truth for authentication: the cookie token only names a row here.
type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create opens a new session for the user and returns it.
func (r *SessionRepo) Create(userID uint, ttl time.Duration) (*model.Session, error) {
	session := model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := r.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Get returns the session with the given id if it is still live. An
// expired row is deleted on the way out and reported as ErrNotFound.
func (r *SessionRepo) Get(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		_ = r.db.Delete(&model.Session{}, "id = ?", id).Error
		return nil, ErrNotFound
	}
	return &session, nil
}

// Delete ends the session with the given id. Deleting a session that is
// already gone is not an error.
func (r *SessionRepo) Delete(id string) error {
	return r.db.Delete(&model.Session{}, "id = ?", id).Error
}
