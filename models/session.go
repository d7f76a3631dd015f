package models

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session holds the per-browser transient state: who is logged in, the pending flash
// message and the outstanding form tokens. Handlers mutate it only through its methods so
// the middleware knows when it must be written back.
type Session struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	EmployeeID uint      `json:"employee_id" gorm:"index"`
	Flash      string    `json:"flash" gorm:"size:1024"`
	Tokens     string    `json:"tokens" gorm:"size:512"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	dirty bool
}

func NewSession(ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl),
		dirty:     true,
	}
}

func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) MarkClean() {
	s.dirty = false
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) Login(employeeID uint) {
	s.EmployeeID = employeeID
	s.Tokens = ""
	s.dirty = true
}

func (s *Session) LoggedIn() bool {
	return s.EmployeeID != 0
}

func (s *Session) SetFlash(message string) {
	s.Flash = message
	s.dirty = true
}

// TakeFlash returns the pending flash message and clears it.
func (s *Session) TakeFlash() string {
	msg := s.Flash
	if msg != "" {
		s.Flash = ""
		s.dirty = true
	}
	return msg
}

// MaxOutstandingTokens bounds how many unused form tokens a session keeps. Issuing past
// the bound drops the oldest.
const MaxOutstandingTokens = 8

func (s *Session) outstanding() []string {
	return strings.Fields(s.Tokens)
}

// IssueToken creates a fresh form token. Earlier tokens stay valid until used, so forms
// open in other tabs can still be submitted.
func (s *Session) IssueToken() string {
	token := uuid.NewString()
	tokens := append(s.outstanding(), token)
	if len(tokens) > MaxOutstandingTokens {
		tokens = tokens[len(tokens)-MaxOutstandingTokens:]
	}
	s.Tokens = strings.Join(tokens, " ")
	s.dirty = true
	return token
}

// VerifyToken checks submitted against the outstanding tokens. A successful check
// consumes the matching token only.
func (s *Session) VerifyToken(submitted string) bool {
	if submitted == "" {
		return false
	}
	tokens := s.outstanding()
	for i, token := range tokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) == 1 {
			s.Tokens = strings.Join(append(tokens[:i], tokens[i+1:]...), " ")
			s.dirty = true
			return true
		}
	}
	return false
}
