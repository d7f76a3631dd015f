package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
)

func TestEmployeeRepo(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepo(gormDB, 2)

	created, err := repo.CreateEmployee(ctx, &models.Employee{Code: "E001", Name: "Alice", Password: "hash"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	exists, err := repo.IsCodeExist(ctx, "E001")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.IsCodeExist(ctx, "E999")
	require.NoError(t, err)
	assert.False(t, exists)

	byCode, err := repo.FindEmployeeByCode(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = repo.FindEmployeeByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.CreateEmployee(ctx, &models.Employee{Code: "E001", Name: "Dup", Password: "hash"})
	assert.Error(t, err)

	for _, c := range []string{"E002", "E003"} {
		_, err := repo.CreateEmployee(ctx, &models.Employee{Code: c, Name: c, Password: "hash"})
		require.NoError(t, err)
	}
	page1, err := repo.GetAllEmployees(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "E003", page1[0].Code)

	count, err := repo.CountAllEmployees(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
