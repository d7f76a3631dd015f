package db

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
)

func TestLikeRepo_CreateLikeIsIdempotent(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	author := seedEmployee(t, gormDB, "E001")
	fan := seedEmployee(t, gormDB, "E002")
	report := seedReport(t, gormDB, author, day(0), "r")
	repo := NewLikeRepo(gormDB, 10)

	created, err := repo.CreateLike(ctx, &models.Like{ReportID: report.ID, EmployeeID: fan.ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateLike(ctx, &models.Like{ReportID: report.ID, EmployeeID: fan.ID})
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.CountLikesByReport(ctx, report.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	mine, err := repo.CountLikesByReportAndEmployee(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, mine)
}

func TestLikeRepo_CreateLikeOnMissingReport(t *testing.T) {
	gormDB := newTestDB(t)
	fan := seedEmployee(t, gormDB, "E002")

	created, err := NewLikeRepo(gormDB, 10).CreateLike(context.Background(), &models.Like{ReportID: 404, EmployeeID: fan.ID})
	assert.False(t, created)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var rows int64
	require.NoError(t, gormDB.DB.Model(&models.Like{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestLikeRepo_ConcurrentLikesCountExactly(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	author := seedEmployee(t, gormDB, "E000")
	report := seedReport(t, gormDB, author, day(0), "popular")
	repo := NewLikeRepo(gormDB, 10)

	const n = 20
	fans := make([]*models.Employee, n)
	for i := range fans {
		fans[i] = seedEmployee(t, gormDB, code(i+1))
	}

	var wg sync.WaitGroup
	errs := make(chan error, n*2)
	for _, fan := range fans {
		// each fan likes twice at the same time; only one of the two may count
		for k := 0; k < 2; k++ {
			wg.Add(1)
			go func(employeeID uint) {
				defer wg.Done()
				if _, err := repo.CreateLike(ctx, &models.Like{ReportID: report.ID, EmployeeID: employeeID}); err != nil {
					errs <- err
				}
			}(fan.ID)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := repo.CountLikesByReport(ctx, report.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, count)

	found, err := NewReportRepo(gormDB, 10).FindReportByID(ctx, report.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, found.LikeCount)
}

func TestLikeRepo_DeleteLike(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	author := seedEmployee(t, gormDB, "E001")
	fan := seedEmployee(t, gormDB, "E002")
	report := seedReport(t, gormDB, author, day(0), "r")
	repo := NewLikeRepo(gormDB, 10)

	removed, err := repo.DeleteLike(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.CreateLike(ctx, &models.Like{ReportID: report.ID, EmployeeID: fan.ID})
	require.NoError(t, err)
	removed, err = repo.DeleteLike(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	count, err := repo.CountLikesByReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeRepo_GetLikesByReportPaginates(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	author := seedEmployee(t, gormDB, "E000")
	report := seedReport(t, gormDB, author, day(0), "r")
	repo := NewLikeRepo(gormDB, 2)
	for i := 1; i <= 3; i++ {
		fan := seedEmployee(t, gormDB, code(i))
		_, err := repo.CreateLike(ctx, &models.Like{ReportID: report.ID, EmployeeID: fan.ID})
		require.NoError(t, err)
	}

	first, err := repo.GetLikesByReport(ctx, report.ID, 1)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Greater(t, first[0].ID, first[1].ID)
	assert.NotEmpty(t, first[0].Employee.Name)

	second, err := repo.GetLikesByReport(ctx, report.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}
