package db

import (
	"fmt"
	"log"

	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/models"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	switch c.DBDriver {
	case "sqlite":
		g.DB = getSQLiteDB(c)
	default:
		g.DB = getPostgresDB(c)
	}

	if c.Tracing {
		if err := g.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Fatalf("unable to install tracing plugin: %v", err)
		}
	}

	if err := migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

// Close releases the underlying connection pool.
func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig(c *config.Config) *gorm.Config {
	gormConfig := &gorm.Config{}
	switch c.Env {
	case "prod":
	case "test":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	default:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	return gormConfig
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("Connecting to postgres: host=%s db=%s port=%d", c.PostgresHost, c.PostgresDB, c.PostgresPort)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresTimeZone)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig(c))
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

func getSQLiteDB(c *config.Config) *gorm.DB {
	dsn := c.SqlitePath + "?_busy_timeout=5000&_foreign_keys=on"
	gormDB, err := gorm.Open(sqlite.Open(dsn), gormConfig(c))
	if err != nil {
		log.Fatal(err)
	}

	// sqlite has a single writer; serialize through one connection so
	// transactions queue instead of failing with "database is locked".
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	return gormDB
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Employee{},
		&models.Report{},
		&models.Like{},
		&models.Session{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	return nil
}
