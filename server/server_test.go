package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services"
)

type testApp struct {
	server *Server
	router *gin.Engine
	db     *db.GormDB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("GIN_MODE", "test")

	conf := &config.Config{
		Env:          "test",
		DBDriver:     "sqlite",
		SqlitePath:   filepath.Join(t.TempDir(), "server_test.db"),
		JWTSecret:    "test-secret",
		SessionHours: 1,
		RowPerPage:   10,
	}
	gormDB := db.GetDB(conf)
	t.Cleanup(func() { _ = gormDB.Close() })

	employeeRepo := db.NewEmployeeRepo(gormDB, conf.RowPerPage)
	s := &Server{
		Config:            conf,
		DB:                gormDB,
		SessionRepository: db.NewSessionRepo(gormDB),
		AuthService:       services.NewAuthService(employeeRepo, conf),
		EmployeeService:   services.NewEmployeeService(employeeRepo, conf),
		ReportService:     services.NewReportService(db.NewReportRepo(gormDB, conf.RowPerPage), conf),
		LikeService:       services.NewLikeService(db.NewLikeRepo(gormDB, conf.RowPerPage), conf),
	}
	return &testApp{server: s, router: s.setupRouter(), db: gormDB}
}

func (a *testApp) createEmployee(t *testing.T, code string, admin bool) *models.Employee {
	t.Helper()
	employee, messages, err := a.server.EmployeeService.CreateEmployee(context.Background(), &models.EmployeeRequest{
		Code:      code,
		Name:      "Employee " + code,
		Password:  "secret123",
		AdminFlag: admin,
	})
	require.NoError(t, err)
	require.Empty(t, messages)
	return employee
}

func (a *testApp) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.DB.Model(model).Count(&n).Error)
	return n
}

// browser keeps the session cookie between requests the way a real client would.
type browser struct {
	t      *testing.T
	app    *testApp
	cookie *http.Cookie
	accept string
}

func (a *testApp) newBrowser(t *testing.T) *browser {
	return &browser{t: t, app: a, accept: gin.MIMEJSON}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	req.Header.Set("Accept", b.accept)
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// page fetches path as JSON and decodes the view data.
func (b *browser) page(path string) map[string]interface{} {
	b.t.Helper()
	w := b.get(path)
	require.Equal(b.t, http.StatusOK, w.Code, w.Body.String())
	var data map[string]interface{}
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

// token renders path and returns the form token it was issued.
func (b *browser) token(path string) string {
	b.t.Helper()
	token, _ := b.page(path)[csrfFormField].(string)
	require.NotEmpty(b.t, token)
	return token
}

func (b *browser) login(code string) {
	b.t.Helper()
	w := b.post("/login", url.Values{
		"_token":   {b.token("/login")},
		"code":     {code},
		"password": {"secret123"},
	})
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
	require.Equal(b.t, "/reports", w.Header().Get("Location"))
}

func (b *browser) createReport(title string) uint {
	b.t.Helper()
	w := b.post("/reports", url.Values{
		"_token":  {b.token("/reports/new")},
		"title":   {title},
		"content": {"content of " + title},
	})
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())

	reports := b.page("/reports/mine")["reports"].([]interface{})
	require.NotEmpty(b.t, reports)
	return uint(reports[0].(map[string]interface{})["id"].(float64))
}
