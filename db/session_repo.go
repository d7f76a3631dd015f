package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionRepository stores per-browser session state between requests.
type SessionRepository interface {
	FindSession(ctx context.Context, id string) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepo struct {
	DB *gorm.DB
}

func NewSessionRepo(db *GormDB) SessionRepository {
	return &sessionRepo{db.DB}
}

func (s *sessionRepo) FindSession(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "find session")
	}
	if session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *sessionRepo) SaveSession(ctx context.Context, session *models.Session) error {
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(session).Error
	if err != nil {
		return errors.Wrap(err, "save session")
	}
	session.MarkClean()
	return nil
}

func (s *sessionRepo) DeleteSession(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

func (s *sessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := s.DB.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.Session{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete expired sessions")
	}
	return result.RowsAffected, nil
}
