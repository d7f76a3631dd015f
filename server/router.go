package server

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	// lastPage is the number of the final page for total rows at size per page.
	"lastPage": func(total int64, size int) int {
		if size < 1 || total <= 0 {
			return 1
		}
		return int((total + int64(size) - 1) / int64(size))
	},
	"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"lines":    func(s string) []string { return strings.Split(s, "\n") },
	"dict": func(pairs ...interface{}) map[string]interface{} {
		m := make(map[string]interface{}, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			if key, ok := pairs[i].(string); ok {
				m[key] = pairs[i+1]
			}
		}
		return m
	},
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		r.SetHTMLTemplate(loadTemplates())
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.SetHTMLTemplate(loadTemplates())

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(newCORSConfig(s.Config.AccessControlAllowOrigin)))
	s.defineRoutes(r)

	return r
}

// newCORSConfig allows the comma separated origins in allowOrigin. An empty list denies
// every cross-origin request.
func newCORSConfig(allowOrigin string) cors.Config {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Accept", "Content-Type", csrfHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range strings.Split(allowOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, o)
		}
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	return corsConfig
}

func (s *Server) defineRoutes(router *gin.Engine) {
	router.Use(s.LoadSession(), s.VerifyCSRFToken())

	router.GET("/login", s.handleShowLogin())
	router.POST("/login", s.handleLogin())

	authorized := router.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/", s.handleIndex())
	authorized.POST("/logout", s.handleLogout())

	reports := authorized.Group("/reports")
	reports.GET("", s.handleGetAllReports())
	reports.GET("/mine", s.handleGetMyReports())
	reports.GET("/new", s.handleNewReport())
	reports.POST("", s.handleCreateReport())
	reports.GET("/:id", s.handleShowReport())
	reports.GET("/:id/edit", s.handleEditReport())
	reports.POST("/:id", s.handleUpdateReport())
	reports.PUT("/:id", s.handleUpdateReport())
	reports.POST("/:id/likes", s.handleLikeReport())
	reports.POST("/:id/unlike", s.handleUnlikeReport())
	reports.GET("/:id/likes", s.handleGetLikes())

	employees := authorized.Group("/employees")
	employees.Use(s.RequireAdmin())
	employees.GET("", s.handleGetAllEmployees())
	employees.GET("/new", s.handleNewEmployee())
	employees.POST("", s.handleCreateEmployee())
	employees.GET("/:id", s.handleShowEmployee())
}
