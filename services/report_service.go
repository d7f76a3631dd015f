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

type ReportService interface {
	GetAllPerPage(ctx context.Context, page int) ([]models.Report, error)
	CountAll(ctx context.Context) (int64, error)
	GetMinePerPage(ctx context.Context, employeeID uint, page int) ([]models.Report, error)
	CountAllMine(ctx context.Context, employeeID uint) (int64, error)
	FindReport(ctx context.Context, id uint) (*models.Report, error)
	CreateReport(ctx context.Context, author *models.Employee, form *models.ReportRequest) (*models.Report, []string, error)
	UpdateReport(ctx context.Context, editor *models.Employee, id uint, form *models.ReportRequest) (*models.Report, []string, error)
	Today() time.Time
	PageSize() int
}

type reportService struct {
	Config     *config.Config
	reportRepo db.ReportRepository
	now        func() time.Time
}

// NewReportService instantiates a ReportService
func NewReportService(reportRepo db.ReportRepository, conf *config.Config) ReportService {
	return &reportService{
		Config:     conf,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

func (s *reportService) PageSize() int {
	return s.reportRepo.PageSize()
}

// Today is the report date used when a form leaves it blank.
func (s *reportService) Today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *reportService) GetAllPerPage(ctx context.Context, page int) ([]models.Report, error) {
	reports, err := s.reportRepo.GetAllReports(ctx, page)
	if err != nil {
		config.LogError(config.GetLogger(), "services", "GetAllPerPage", "list reports", page, err)
		return nil, err
	}
	return reports, nil
}

func (s *reportService) CountAll(ctx context.Context) (int64, error) {
	return s.reportRepo.CountAllReports(ctx)
}

func (s *reportService) GetMinePerPage(ctx context.Context, employeeID uint, page int) ([]models.Report, error) {
	reports, err := s.reportRepo.GetReportsByEmployee(ctx, employeeID, page)
	if err != nil {
		config.LogError(config.GetLogger(), "services", "GetMinePerPage", "list own reports", employeeID, err)
		return nil, err
	}
	return reports, nil
}

func (s *reportService) CountAllMine(ctx context.Context, employeeID uint) (int64, error) {
	return s.reportRepo.CountReportsByEmployee(ctx, employeeID)
}

func (s *reportService) FindReport(ctx context.Context, id uint) (*models.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		config.LogError(config.GetLogger(), "services", "FindReport", "find report", id, err)
		return nil, err
	}
	return report, nil
}

// parseReportDate reads the submitted date; blank means today.
func (s *reportService) parseReportDate(value string) (time.Time, bool) {
	if value == "" {
		return s.Today(), true
	}
	date, err := time.ParseInLocation(models.ReportDateLayout, value, s.now().Location())
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func (s *reportService) validate(form *models.ReportRequest) (time.Time, []string) {
	messages := ValidateForm(form)
	date, ok := s.parseReportDate(form.ReportDate)
	if !ok {
		messages = append(messages, "Report date must be a valid date (YYYY-MM-DD)")
	}
	return date, messages
}

func (s *reportService) CreateReport(ctx context.Context, author *models.Employee, form *models.ReportRequest) (*models.Report, []string, error) {
	if author == nil || author.ID == 0 {
		return nil, nil, apiError.ErrUnauthorized
	}
	date, messages := s.validate(form)
	if len(messages) > 0 {
		return nil, messages, nil
	}

	now := s.now()
	report := &models.Report{
		EmployeeID: author.ID,
		ReportDate: date,
		Title:      form.Title,
		Content:    form.Content,
	}
	report.CreatedAt = now
	report.UpdatedAt = now

	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		config.LogError(config.GetLogger(), "services", "CreateReport", "save report", author.ID, err)
		return nil, nil, err
	}
	report.Employee = *author
	return report, nil, nil
}

// UpdateReport applies the form to an existing report. Only the author may edit; anyone
// else gets ErrForbidden and nothing is written.
func (s *reportService) UpdateReport(ctx context.Context, editor *models.Employee, id uint, form *models.ReportRequest) (*models.Report, []string, error) {
	if editor == nil || editor.ID == 0 {
		return nil, nil, apiError.ErrUnauthorized
	}
	report, err := s.FindReport(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !report.IsAuthoredBy(editor.ID) {
		return nil, nil, apiError.ErrForbidden
	}

	date, messages := s.validate(form)
	if len(messages) > 0 {
		return report, messages, nil
	}

	report.ReportDate = date
	report.Title = form.Title
	report.Content = form.Content
	report.UpdatedAt = s.now()
	if err := s.reportRepo.UpdateReport(ctx, report); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apiError.ErrNotFound
		}
		config.LogError(config.GetLogger(), "services", "UpdateReport", "update report", id, err)
		return nil, nil, err
	}
	return report, nil, nil
}
