package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
)

// Employee is a user of the report board.
type Employee struct {
	Model
	Code      string `json:"code" gorm:"uniqueIndex;size:64;not null"`
	Name      string `json:"name" gorm:"size:255;not null"`
	Password  string `json:"-" gorm:"size:255;not null"`
	AdminFlag bool   `json:"admin_flag" gorm:"default:false"`
}

func (e *Employee) IsAdmin() bool {
	return e != nil && e.AdminFlag
}

type LoginRequest struct {
	Code     string `json:"code" form:"code" conform:"trim" validate:"required" label:"Employee code"`
	Password string `json:"password" form:"password" validate:"required" label:"Password"`
}

type EmployeeRequest struct {
	Code      string `json:"code" form:"code" conform:"trim" validate:"required,max=64" label:"Employee code"`
	Name      string `json:"name" form:"name" conform:"trim" validate:"required,max=255" label:"Name"`
	Password  string `json:"password" form:"password" validate:"required" label:"Password"`
	AdminFlag bool   `json:"admin_flag" form:"admin_flag"`
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(64, errors.New("password cant be more than 64 characters")))
	err := passwordValidator.Validate(password)
	return err
}
