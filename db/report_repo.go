package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository interface {
	GetAllReports(ctx context.Context, page int) ([]models.Report, error)
	CountAllReports(ctx context.Context) (int64, error)
	GetReportsByEmployee(ctx context.Context, employeeID uint, page int) ([]models.Report, error)
	CountReportsByEmployee(ctx context.Context, employeeID uint) (int64, error)
	FindReportByID(ctx context.Context, id uint) (*models.Report, error)
	CreateReport(ctx context.Context, report *models.Report) error
	UpdateReport(ctx context.Context, report *models.Report) error
	PageSize() int
}

type reportRepo struct {
	DB       *gorm.DB
	pageSize int
}

func NewReportRepo(db *GormDB, pageSize int) ReportRepository {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &reportRepo{DB: db.DB, pageSize: pageSize}
}

const likeCountSelect = "reports.*, (SELECT COUNT(*) FROM likes WHERE likes.report_id = reports.id) AS like_count"

// reports starts a report query that carries the live like count and the author.
func (r *reportRepo) reports(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&models.Report{}).
		Select(likeCountSelect).
		Preload("Employee")
}

func (r *reportRepo) PageSize() int {
	return r.pageSize
}

func (r *reportRepo) GetAllReports(ctx context.Context, page int) ([]models.Report, error) {
	var reports []models.Report
	err := r.reports(ctx).
		Order("reports.report_date DESC, reports.id DESC").
		Scopes(paginate(page, r.pageSize)).
		Find(&reports).Error
	if err != nil {
		return nil, errors.Wrap(err, "get all reports")
	}
	return reports, nil
}

func (r *reportRepo) CountAllReports(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Report{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count reports")
	}
	return count, nil
}

func (r *reportRepo) GetReportsByEmployee(ctx context.Context, employeeID uint, page int) ([]models.Report, error) {
	var reports []models.Report
	err := r.reports(ctx).
		Where("reports.employee_id = ?", employeeID).
		Order("reports.report_date DESC, reports.id DESC").
		Scopes(paginate(page, r.pageSize)).
		Find(&reports).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get reports of employee %d", employeeID)
	}
	return reports, nil
}

func (r *reportRepo) CountReportsByEmployee(ctx context.Context, employeeID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Report{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count reports of employee %d", employeeID)
	}
	return count, nil
}

func (r *reportRepo) FindReportByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.reports(ctx).Where("reports.id = ?", id).Take(&report).Error; err != nil {
		return nil, errors.Wrapf(err, "find report %d", id)
	}
	return &report, nil
}

func (r *reportRepo) CreateReport(ctx context.Context, report *models.Report) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(report).Error; err != nil {
		return errors.Wrap(err, "create report")
	}
	return nil
}

// UpdateReport writes the editable columns only; author and creation time never change.
func (r *reportRepo) UpdateReport(ctx context.Context, report *models.Report) error {
	result := r.DB.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", report.ID).
		Updates(map[string]interface{}{
			"report_date": report.ReportDate,
			"title":       report.Title,
			"content":     report.Content,
			"updated_at":  report.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update report %d", report.ID)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "update report %d", report.ID)
	}
	return nil
}
