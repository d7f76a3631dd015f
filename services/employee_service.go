package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	apiError "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services/utils"
	"gorm.io/gorm"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, form *models.EmployeeRequest) (*models.Employee, []string, error)
	GetAllPerPage(ctx context.Context, page int) ([]models.Employee, error)
	CountAll(ctx context.Context) (int64, error)
	FindEmployee(ctx context.Context, id uint) (*models.Employee, error)
	PageSize() int
}

type employeeService struct {
	Config       *config.Config
	employeeRepo db.EmployeeRepository
}

func NewEmployeeService(employeeRepo db.EmployeeRepository, conf *config.Config) EmployeeService {
	return &employeeService{
		Config:       conf,
		employeeRepo: employeeRepo,
	}
}

func (s *employeeService) PageSize() int {
	return s.employeeRepo.PageSize()
}

func (s *employeeService) CreateEmployee(ctx context.Context, form *models.EmployeeRequest) (*models.Employee, []string, error) {
	messages := ValidateForm(form)
	if form.Password != "" {
		if err := models.ValidatePassword(form.Password); err != nil {
			messages = append(messages, err.Error())
		}
	}
	if form.Code != "" {
		exists, err := s.employeeRepo.IsCodeExist(ctx, form.Code)
		if err != nil {
			config.LogError(config.GetLogger(), "services", "CreateEmployee", "check code", form.Code, err)
			return nil, nil, err
		}
		if exists {
			messages = append(messages, fmt.Sprintf("Employee code %s is already taken", form.Code))
		}
	}
	if len(messages) > 0 {
		return nil, messages, nil
	}

	hashed, err := utils.HashPassword(form.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}
	employee := &models.Employee{
		Code:      form.Code,
		Name:      form.Name,
		Password:  hashed,
		AdminFlag: form.AdminFlag,
	}
	created, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		config.LogError(config.GetLogger(), "services", "CreateEmployee", "save employee", form.Code, err)
		if apiErr := apiError.GetUniqueContraintError(err); apiErr.Status != apiError.ErrInternalServerError.Status {
			return nil, []string{fmt.Sprintf("Employee code %s is already taken", form.Code)}, nil
		}
		return nil, nil, err
	}
	return created, nil, nil
}

func (s *employeeService) GetAllPerPage(ctx context.Context, page int) ([]models.Employee, error) {
	return s.employeeRepo.GetAllEmployees(ctx, page)
}

func (s *employeeService) CountAll(ctx context.Context) (int64, error) {
	return s.employeeRepo.CountAllEmployees(ctx)
}

func (s *employeeService) FindEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}
