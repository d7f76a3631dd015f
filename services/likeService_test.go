package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/dailyreport/db"
	apiError "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
)

func TestLikeService_LikeFlow(t *testing.T) {
	gormDB, conf := newTestDB(t)
	ctx := context.Background()
	reports := NewReportService(db.NewReportRepo(gormDB, conf.RowPerPage), conf)
	likes := NewLikeService(db.NewLikeRepo(gormDB, conf.RowPerPage), conf)
	now := time.Date(2024, time.May, 7, 9, 0, 0, 0, time.UTC)
	likes.(*likeService).now = func() time.Time { return now }

	author := seedEmployee(t, gormDB, "E001", "secret123")
	fan := seedEmployee(t, gormDB, "E002", "secret123")
	report, _, err := reports.CreateReport(ctx, author, &models.ReportRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	has, err := likes.HasLiked(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, has)

	liked, err := likes.LikeReport(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = likes.LikeReport(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, liked, "repeat like is a no-op")

	count, err := likes.CountLikes(ctx, report.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	has, err = likes.HasLiked(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, has)

	listed, err := likes.GetLikesPerPage(ctx, report.ID, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, fan.ID, listed[0].EmployeeID)
	assert.True(t, listed[0].CreatedAt.Equal(listed[0].UpdatedAt))
	assert.True(t, listed[0].CreatedAt.Equal(now))

	removed, err := likes.UnlikeReport(ctx, report.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	count, err = likes.CountLikes(ctx, report.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeService_MissingReport(t *testing.T) {
	gormDB, conf := newTestDB(t)
	likes := NewLikeService(db.NewLikeRepo(gormDB, conf.RowPerPage), conf)
	fan := seedEmployee(t, gormDB, "E002", "secret123")

	_, err := likes.LikeReport(context.Background(), 404, fan.ID)
	assert.ErrorIs(t, err, apiError.ErrNotFound)
}

func TestLikeService_AnonymousCannotLike(t *testing.T) {
	gormDB, conf := newTestDB(t)
	likes := NewLikeService(db.NewLikeRepo(gormDB, conf.RowPerPage), conf)

	_, err := likes.LikeReport(context.Background(), 1, 0)
	assert.ErrorIs(t, err, apiError.ErrUnauthorized)

	has, err := likes.HasLiked(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.False(t, has)
}
