package services

import (
	"context"
	"errors"
	"time"

	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	apiError "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
)

// LikeService interface
type LikeService interface {
	LikeReport(ctx context.Context, reportID, employeeID uint) (bool, error)
	UnlikeReport(ctx context.Context, reportID, employeeID uint) (bool, error)
	GetLikesPerPage(ctx context.Context, reportID uint, page int) ([]models.Like, error)
	CountLikes(ctx context.Context, reportID uint) (int64, error)
	CountLikedBy(ctx context.Context, reportID, employeeID uint) (int64, error)
	HasLiked(ctx context.Context, reportID, employeeID uint) (bool, error)
	PageSize() int
}

// likeService struct
type likeService struct {
	Config   *config.Config
	likeRepo db.LikeRepository
	now      func() time.Time
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(likeRepo db.LikeRepository, conf *config.Config) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		Config:   conf,
		now:      time.Now,
	}
}

func (lk *likeService) PageSize() int {
	return lk.likeRepo.PageSize()
}

// LikeReport records that employeeID likes reportID. It returns false when the like
// already existed; the stored state is unchanged in that case.
func (lk *likeService) LikeReport(ctx context.Context, reportID, employeeID uint) (bool, error) {
	if employeeID == 0 {
		return false, apiError.ErrUnauthorized
	}
	now := lk.now()
	like := &models.Like{ReportID: reportID, EmployeeID: employeeID}
	like.CreatedAt = now
	like.UpdatedAt = now

	created, err := lk.likeRepo.CreateLike(ctx, like)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apiError.ErrNotFound
		}
		config.LogError(config.GetLogger(), "services", "LikeReport", "create like", like, err)
		return false, err
	}
	return created, nil
}

func (lk *likeService) UnlikeReport(ctx context.Context, reportID, employeeID uint) (bool, error) {
	if employeeID == 0 {
		return false, apiError.ErrUnauthorized
	}
	removed, err := lk.likeRepo.DeleteLike(ctx, reportID, employeeID)
	if err != nil {
		config.LogError(config.GetLogger(), "services", "UnlikeReport", "delete like", reportID, err)
		return false, err
	}
	return removed, nil
}

func (lk *likeService) GetLikesPerPage(ctx context.Context, reportID uint, page int) ([]models.Like, error) {
	return lk.likeRepo.GetLikesByReport(ctx, reportID, page)
}

func (lk *likeService) CountLikes(ctx context.Context, reportID uint) (int64, error) {
	return lk.likeRepo.CountLikesByReport(ctx, reportID)
}

func (lk *likeService) CountLikedBy(ctx context.Context, reportID, employeeID uint) (int64, error) {
	return lk.likeRepo.CountLikesByReportAndEmployee(ctx, reportID, employeeID)
}

func (lk *likeService) HasLiked(ctx context.Context, reportID, employeeID uint) (bool, error) {
	if employeeID == 0 {
		return false, nil
	}
	n, err := lk.CountLikedBy(ctx, reportID, employeeID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
