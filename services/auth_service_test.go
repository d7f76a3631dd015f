package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/db"
	apiError "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
)

func TestAuthService_Login(t *testing.T) {
	gormDB, conf := newTestDB(t)
	ctx := context.Background()
	auth := NewAuthService(db.NewEmployeeRepo(gormDB, conf.RowPerPage), conf)
	employee := seedEmployee(t, gormDB, "E001", "secret123")

	got, messages, err := auth.Login(ctx, &models.LoginRequest{Code: " E001 ", Password: "secret123"})
	require.NoError(t, err)
	require.Empty(t, messages)
	assert.Equal(t, employee.ID, got.ID)

	_, _, err = auth.Login(ctx, &models.LoginRequest{Code: "E001", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, &models.LoginRequest{Code: "E404", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, messages, err = auth.Login(ctx, &models.LoginRequest{})
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestAuthService_FindEmployee(t *testing.T) {
	gormDB, conf := newTestDB(t)
	auth := NewAuthService(db.NewEmployeeRepo(gormDB, conf.RowPerPage), conf)
	employee := seedEmployee(t, gormDB, "E001", "secret123")

	found, err := auth.FindEmployee(context.Background(), employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "E001", found.Code)

	_, err = auth.FindEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, apiError.ErrNotFound)
}
