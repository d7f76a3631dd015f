package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	apiError "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services/utils"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown code and for a wrong password alike.
var ErrInvalidCredentials = apiError.New("invalid employee code or password", http.StatusUnauthorized)

// AuthService interface
type AuthService interface {
	Login(ctx context.Context, form *models.LoginRequest) (*models.Employee, []string, error)
	FindEmployee(ctx context.Context, id uint) (*models.Employee, error)
}

// authService struct
type authService struct {
	Config       *config.Config
	employeeRepo db.EmployeeRepository
}

// NewAuthService instantiate an authService
func NewAuthService(employeeRepo db.EmployeeRepository, conf *config.Config) AuthService {
	return &authService{
		Config:       conf,
		employeeRepo: employeeRepo,
	}
}

func (s *authService) Login(ctx context.Context, form *models.LoginRequest) (*models.Employee, []string, error) {
	if messages := ValidateForm(form); len(messages) > 0 {
		return nil, messages, nil
	}

	employee, err := s.employeeRepo.FindEmployeeByCode(ctx, form.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		config.LogError(config.GetLogger(), "services", "Login", "find employee", form.Code, err)
		return nil, nil, err
	}
	if !utils.CheckPasswordHash(form.Password, employee.Password) {
		return nil, nil, ErrInvalidCredentials
	}
	return employee, nil, nil
}

func (s *authService) FindEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}
