package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/dailyreport/config"
	errs "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/server/response"
)

var offeredFormats = []string{gin.MIMEHTML, gin.MIMEJSON}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(offeredFormats...) == gin.MIMEJSON
}

// render writes data as the named HTML template or as JSON, whichever the client accepts.
// Every page gets a fresh form token and the pending flash message.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if session := currentSession(c); session != nil {
		data[csrfFormField] = session.IssueToken()
		data["flush"] = session.TakeFlash()
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = []string{}
	}
	if employee := currentEmployee(c); employee != nil {
		data["current_employee"] = toEmployeeView(employee)
	}
	s.commitSession(c)

	c.Negotiate(status, gin.Negotiate{
		Offered:  offeredFormats,
		HTMLName: name,
		HTMLData: data,
		JSONData: data,
	})
}

// renderError shows the generic error page for err. Details of unexpected errors are
// logged, never shown.
func (s *Server) renderError(c *gin.Context, err error) {
	status := errs.StatusOf(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "server", "renderError", c.Request.Method+" "+c.Request.URL.Path, nil, err)
	}
	s.commitSession(c)

	if wantsJSON(c) {
		response.HandleErrors(c, err)
		return
	}
	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": http.StatusText(status),
	})
}

// redirectWithFlash stores message for the next page and sends the client there.
func (s *Server) redirectWithFlash(c *gin.Context, location, message string) {
	if session := currentSession(c); session != nil && message != "" {
		session.SetFlash(message)
	}
	s.commitSession(c)
	c.Redirect(http.StatusSeeOther, location)
}

// pageFromQuery reads ?page=; anything missing, malformed or below 1 is page 1.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrNotFound
	}
	return uint(id), nil
}
