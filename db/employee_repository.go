package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/techagentng/dailyreport/models"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	IsCodeExist(ctx context.Context, code string) (bool, error)
	FindEmployeeByCode(ctx context.Context, code string) (*models.Employee, error)
	FindEmployeeByID(ctx context.Context, id uint) (*models.Employee, error)
	GetAllEmployees(ctx context.Context, page int) ([]models.Employee, error)
	CountAllEmployees(ctx context.Context) (int64, error)
	PageSize() int
}

type employeeRepo struct {
	DB       *gorm.DB
	pageSize int
}

func NewEmployeeRepo(db *GormDB, pageSize int) EmployeeRepository {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &employeeRepo{DB: db.DB, pageSize: pageSize}
}

func (a *employeeRepo) PageSize() int {
	return a.pageSize
}

func (a *employeeRepo) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := a.DB.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, errors.Wrapf(err, "create employee %s", employee.Code)
	}
	return employee, nil
}

func (a *employeeRepo) IsCodeExist(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := a.DB.WithContext(ctx).Model(&models.Employee{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check employee code")
	}
	return count > 0, nil
}

func (a *employeeRepo) FindEmployeeByCode(ctx context.Context, code string) (*models.Employee, error) {
	var employee models.Employee
	if err := a.DB.WithContext(ctx).Where("code = ?", code).First(&employee).Error; err != nil {
		return nil, errors.Wrapf(err, "find employee by code %s", code)
	}
	return &employee, nil
}

func (a *employeeRepo) FindEmployeeByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := a.DB.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find employee %d", id)
	}
	return &employee, nil
}

func (a *employeeRepo) GetAllEmployees(ctx context.Context, page int) ([]models.Employee, error) {
	var employees []models.Employee
	err := a.DB.WithContext(ctx).
		Order("id DESC").
		Scopes(paginate(page, a.pageSize)).
		Find(&employees).Error
	if err != nil {
		return nil, errors.Wrap(err, "get all employees")
	}
	return employees, nil
}

func (a *employeeRepo) CountAllEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := a.DB.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count employees")
	}
	return count, nil
}
