package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services"
)

func (s *Server) handleShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := currentSession(c); session != nil && session.LoggedIn() {
			c.Redirect(http.StatusSeeOther, "/reports")
			return
		}
		s.renderLoginForm(c, http.StatusOK, models.LoginRequest{}, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.LoginRequest
		if err := c.ShouldBind(&form); err != nil {
			s.renderLoginForm(c, http.StatusUnprocessableEntity, form, []string{err.Error()})
			return
		}

		employee, messages, err := s.AuthService.Login(c.Request.Context(), &form)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				s.renderLoginForm(c, http.StatusUnauthorized, form, []string{services.ErrInvalidCredentials.Message})
				return
			}
			s.renderError(c, err)
			return
		}
		if len(messages) > 0 {
			s.renderLoginForm(c, http.StatusUnprocessableEntity, form, messages)
			return
		}

		session := s.renewSession(c)
		session.Login(employee.ID)
		config.GetLogger().WithField("employee", employee.Code).Info("employee logged in")
		s.redirectWithFlash(c, "/reports", "Logged in.")
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renewSession(c)
		s.redirectWithFlash(c, "/login", "Logged out.")
	}
}

func (s *Server) renderLoginForm(c *gin.Context, status int, form models.LoginRequest, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	form.Password = ""
	s.render(c, status, "login.html", gin.H{
		"login":  form,
		"errors": messages,
	})
}
