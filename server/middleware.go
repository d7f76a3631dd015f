package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	errs "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/server/response"
	"github.com/techagentng/dailyreport/services/jwt"
)

const (
	sessionCookieName = "dailyreport_session"
	csrfFormField     = "_token"
	csrfHeader        = "X-CSRF-Token"

	ctxSession  = "session"
	ctxEmployee = "employee"
)

// LoadSession attaches the caller's session to the context, starting a new one when the
// cookie is missing, forged or expired. A session left dirty by the handler is saved.
func (s *Server) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := s.sessionFromCookie(c)
		if session == nil {
			s.startSession(c)
		} else {
			c.Set(ctxSession, session)
		}

		c.Next()

		s.commitSession(c)
	}
}

func (s *Server) sessionFromCookie(c *gin.Context) *models.Session {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie == "" {
		return nil
	}
	sessionID, err := jwt.SessionIDFromToken(cookie, s.Config.JWTSecret)
	if err != nil {
		return nil
	}
	session, err := s.SessionRepository.FindSession(c.Request.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, db.ErrSessionNotFound) {
			config.LogError(config.GetLogger(), "server", "LoadSession", "find session", sessionID, err)
		}
		return nil
	}
	return session
}

// startSession replaces the context session with a fresh one and points the cookie at it.
func (s *Server) startSession(c *gin.Context) *models.Session {
	ttl := s.Config.SessionTTL()
	session := models.NewSession(ttl)
	token, err := jwt.GenerateSessionToken(session.ID, s.Config.JWTSecret, ttl)
	if err != nil {
		config.LogError(config.GetLogger(), "server", "startSession", "sign session cookie", nil, err)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", s.Config.CookieSecure, true)
	}
	c.Set(ctxSession, session)
	return session
}

// renewSession discards the current session and starts a new one, so a session id
// seen before login is never valid after it.
func (s *Server) renewSession(c *gin.Context) *models.Session {
	if old := currentSession(c); old != nil {
		if err := s.SessionRepository.DeleteSession(c.Request.Context(), old.ID); err != nil {
			config.LogError(config.GetLogger(), "server", "renewSession", "delete session", old.ID, err)
		}
	}
	return s.startSession(c)
}

// commitSession writes the session back if a handler changed it. It runs before a
// response is written and again when the request finishes.
func (s *Server) commitSession(c *gin.Context) {
	session := currentSession(c)
	if session == nil || !session.Dirty() {
		return
	}
	if err := s.SessionRepository.SaveSession(c.Request.Context(), session); err != nil {
		config.LogError(config.GetLogger(), "server", "commitSession", "save session", session.ID, err)
	}
}

// VerifyCSRFToken rejects state-changing requests whose form token does not match the
// one issued to the session. Nothing downstream runs on a mismatch.
func (s *Server) VerifyCSRFToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.GetHeader(csrfHeader)
		if submitted == "" {
			submitted = c.PostForm(csrfFormField)
		}
		session := currentSession(c)
		if session == nil || !session.VerifyToken(submitted) {
			s.renderError(c, errs.ErrInvalidToken)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authorize loads the logged-in employee. Browsers without a login are sent to the
// login form; API clients get a 401.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil || !session.LoggedIn() {
			s.unauthorized(c)
			return
		}

		employee, err := s.AuthService.FindEmployee(c.Request.Context(), session.EmployeeID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				session.Login(0)
				s.unauthorized(c)
				return
			}
			s.renderError(c, err)
			c.Abort()
			return
		}

		c.Set(ctxEmployee, employee)
		c.Next()
	}
}

// RequireAdmin must run after Authorize.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentEmployee(c).IsAdmin() {
			s.renderError(c, errs.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) unauthorized(c *gin.Context) {
	if wantsJSON(c) {
		respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
		return
	}
	s.commitSession(c)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}

func currentEmployee(c *gin.Context) *models.Employee {
	v, ok := c.Get(ctxEmployee)
	if !ok {
		return nil
	}
	employee, _ := v.(*models.Employee)
	return employee
}

// respondAndAbort calls response.JSON and aborts the Context
func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}
