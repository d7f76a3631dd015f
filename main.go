package main

import (
	"log"

	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	"github.com/techagentng/dailyreport/server"
	"github.com/techagentng/dailyreport/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if conf.JWTSecret == "" {
		log.Fatal("DAILYREPORT_JWT_SECRET must be set")
	}

	gormDB := db.GetDB(conf)
	defer gormDB.Close()

	employeeRepo := db.NewEmployeeRepo(gormDB, conf.RowPerPage)
	reportRepo := db.NewReportRepo(gormDB, conf.RowPerPage)
	likeRepo := db.NewLikeRepo(gormDB, conf.RowPerPage)

	var sessionRepo db.SessionRepository
	switch conf.SessionBackend {
	case "redis":
		redisClient, err := db.NewRedisClient(conf)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		sessionRepo = db.NewRedisSessionRepo(redisClient)
	default:
		sessionRepo = db.NewSessionRepo(gormDB)
	}

	s := &server.Server{
		Config:            conf,
		DB:                gormDB,
		SessionRepository: sessionRepo,
		AuthService:       services.NewAuthService(employeeRepo, conf),
		EmployeeService:   services.NewEmployeeService(employeeRepo, conf),
		ReportService:     services.NewReportService(reportRepo, conf),
		LikeService:       services.NewLikeService(likeRepo, conf),
	}

	s.Start()
}
