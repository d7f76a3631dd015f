package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	"github.com/techagentng/dailyreport/services"
)

const sessionSweepInterval = 30 * time.Minute

// Server holds the dependencies shared by every handler.
type Server struct {
	Config            *config.Config
	DB                *db.GormDB
	SessionRepository db.SessionRepository
	AuthService       services.AuthService
	EmployeeService   services.EmployeeService
	ReportService     services.ReportService
	LikeService       services.LikeService
}

// Start serves HTTP until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	logger := config.GetLogger()
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Config.Port),
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go s.sweepExpiredSessions(sweepCtx, sessionSweepInterval)

	logger.WithFields(logrus.Fields{"port": s.Config.Port, "env": s.Config.Env}).Info("server started")

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	cancelSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// sweepExpiredSessions periodically removes sessions past their expiry until ctx is done.
func (s *Server) sweepExpiredSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.SessionRepository.DeleteExpiredSessions(ctx, time.Now())
			if err != nil {
				config.LogError(config.GetLogger(), "server", "sweepExpiredSessions", "delete expired sessions", nil, err)
				continue
			}
			if removed > 0 {
				config.GetLogger().WithField("removed", removed).Info("cleaned up expired sessions")
			}
		}
	}
}
