package db

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository interface
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) (bool, error)
	DeleteLike(ctx context.Context, reportID, employeeID uint) (bool, error)
	GetLikesByReport(ctx context.Context, reportID uint, page int) ([]models.Like, error)
	CountLikesByReport(ctx context.Context, reportID uint) (int64, error)
	CountLikesByReportAndEmployee(ctx context.Context, reportID, employeeID uint) (int64, error)
	PageSize() int
}

// likeRepo struct
type likeRepo struct {
	DB       *gorm.DB
	pageSize int
}

// NewLikeRepo creates a new instance of LikeRepository
func NewLikeRepo(db *GormDB, pageSize int) LikeRepository {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &likeRepo{DB: db.DB, pageSize: pageSize}
}

func (lk *likeRepo) PageSize() int {
	return lk.pageSize
}

// CreateLike records the like inside one transaction. It returns false without error when
// the employee already likes the report.
func (lk *likeRepo) CreateLike(ctx context.Context, like *models.Like) (bool, error) {
	tx := lk.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, errors.Wrap(tx.Error, "begin like transaction")
	}

	var reports int64
	if err := tx.Model(&models.Report{}).Where("id = ?", like.ReportID).Count(&reports).Error; err != nil {
		tx.Rollback()
		return false, errors.Wrapf(err, "check report %d", like.ReportID)
	}
	if reports == 0 {
		tx.Rollback()
		return false, errors.Wrapf(gorm.ErrRecordNotFound, "report %d", like.ReportID)
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "employee_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(like)
	if result.Error != nil {
		log.Println("Failed to record like, rolling back")
		tx.Rollback()
		return false, errors.Wrap(result.Error, "create like")
	}

	if err := tx.Commit().Error; err != nil {
		return false, errors.Wrap(err, "commit like")
	}
	return result.RowsAffected == 1, nil
}

func (lk *likeRepo) DeleteLike(ctx context.Context, reportID, employeeID uint) (bool, error) {
	result := lk.DB.WithContext(ctx).
		Where("report_id = ? AND employee_id = ?", reportID, employeeID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "delete like of employee %d on report %d", employeeID, reportID)
	}
	return result.RowsAffected > 0, nil
}

func (lk *likeRepo) GetLikesByReport(ctx context.Context, reportID uint, page int) ([]models.Like, error) {
	var likes []models.Like
	err := lk.DB.WithContext(ctx).
		Preload("Employee").
		Where("report_id = ?", reportID).
		Order("id DESC").
		Scopes(paginate(page, lk.pageSize)).
		Find(&likes).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get likes of report %d", reportID)
	}
	return likes, nil
}

func (lk *likeRepo) CountLikesByReport(ctx context.Context, reportID uint) (int64, error) {
	var count int64
	err := lk.DB.WithContext(ctx).Model(&models.Like{}).Where("report_id = ?", reportID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count likes of report %d", reportID)
	}
	return count, nil
}

func (lk *likeRepo) CountLikesByReportAndEmployee(ctx context.Context, reportID, employeeID uint) (int64, error) {
	var count int64
	err := lk.DB.WithContext(ctx).
		Model(&models.Like{}).
		Where("report_id = ? AND employee_id = ?", reportID, employeeID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count likes of employee %d on report %d", employeeID, reportID)
	}
	return count, nil
}
