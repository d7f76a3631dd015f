package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug                    bool   `envconfig:"debug"`
	Port                     int    `envconfig:"port" default:"8080"`
	Env                      string `envconfig:"env" default:"dev"`
	DBDriver                 string `envconfig:"db_driver" default:"postgres"`
	SqlitePath               string `envconfig:"sqlite_path" default:"dailyreport.db"`
	PostgresHost             string `envconfig:"postgres_host"`
	PostgresUser             string `envconfig:"postgres_user"`
	PostgresDB               string `envconfig:"postgres_db"`
	PostgresPort             int    `envconfig:"postgres_port" default:"5432"`
	PostgresPassword         string `envconfig:"postgres_password"`
	PostgresTimeZone         string `envconfig:"postgres_timezone" default:"Asia/Tokyo"`
	JWTSecret                string `envconfig:"jwt_secret"`
	SessionBackend           string `envconfig:"session_backend" default:"db"`
	SessionHours             int    `envconfig:"session_hours" default:"24"`
	RedisAddress             string `envconfig:"redis_address" default:"localhost:6379"`
	RedisPassword            string `envconfig:"redis_password"`
	RowPerPage               int    `envconfig:"row_per_page" default:"15"`
	CookieSecure             bool   `envconfig:"cookie_secure"`
	AccessControlAllowOrigin string `envconfig:"access_control_allow_origin"`
	Tracing                  bool   `envconfig:"tracing"`
}

// SessionTTL is how long an idle session survives in the store.
func (c *Config) SessionTTL() time.Duration {
	if c.SessionHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.SessionHours) * time.Hour
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("dailyreport", c)
	if err != nil {
		return nil, err
	}
	if c.RowPerPage <= 0 {
		c.RowPerPage = 15
	}
	configureLogger(c)
	return c, nil
}
