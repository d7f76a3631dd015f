package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services/utils"
)

func newTestDB(t *testing.T) (*db.GormDB, *config.Config) {
	t.Helper()
	conf := &config.Config{
		Env:        "test",
		DBDriver:   "sqlite",
		SqlitePath: filepath.Join(t.TempDir(), "services_test.db"),
		RowPerPage: 10,
	}
	gormDB := db.GetDB(conf)
	t.Cleanup(func() { _ = gormDB.Close() })
	return gormDB, conf
}

func seedEmployee(t *testing.T, gormDB *db.GormDB, code, password string) *models.Employee {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	employee, err := db.NewEmployeeRepo(gormDB, 10).CreateEmployee(context.Background(), &models.Employee{
		Code:     code,
		Name:     "Employee " + code,
		Password: hashed,
	})
	require.NoError(t, err)
	return employee
}
