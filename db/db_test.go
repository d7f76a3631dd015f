package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/models"
)

func newTestDB(t *testing.T) *GormDB {
	t.Helper()
	conf := &config.Config{
		Env:        "test",
		DBDriver:   "sqlite",
		SqlitePath: filepath.Join(t.TempDir(), "dailyreport_test.db"),
	}
	gormDB := GetDB(conf)
	t.Cleanup(func() { _ = gormDB.Close() })
	return gormDB
}

func seedEmployee(t *testing.T, gormDB *GormDB, code string) *models.Employee {
	t.Helper()
	employee := &models.Employee{Code: code, Name: "Employee " + code, Password: "hash"}
	require.NoError(t, gormDB.DB.Create(employee).Error)
	return employee
}

func seedReport(t *testing.T, gormDB *GormDB, author *models.Employee, date time.Time, title string) *models.Report {
	t.Helper()
	report := &models.Report{
		EmployeeID: author.ID,
		ReportDate: date,
		Title:      title,
		Content:    "content of " + title,
	}
	require.NoError(t, NewReportRepo(gormDB, 10).CreateReport(context.Background(), report))
	return report
}

func day(n int) time.Time {
	return time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, n)
}

func code(i int) string {
	return fmt.Sprintf("E%03d", i)
}
