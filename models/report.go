package models

import (
	"time"
)

// Report is a dated daily report written by one employee.
// LikeCount is never stored; it is filled from the likes table when a query selects it.
type Report struct {
	Model
	EmployeeID uint      `json:"employee_id" gorm:"not null;index"`
	Employee   Employee  `json:"employee" gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ReportDate time.Time `json:"report_date" gorm:"type:date;not null;index"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	LikeCount  int64     `json:"like_count" gorm:"->;-:migration"`
}

// IsAuthoredBy reports whether employeeID wrote the report.
func (r *Report) IsAuthoredBy(employeeID uint) bool {
	return r != nil && employeeID != 0 && r.EmployeeID == employeeID
}

const ReportDateLayout = "2006-01-02"

type ReportRequest struct {
	ReportDate string `json:"report_date" form:"report_date" conform:"trim"`
	Title      string `json:"title" form:"title" conform:"trim" validate:"required,max=255" label:"Title"`
	Content    string `json:"content" form:"content" conform:"trim" validate:"required,max=10000" label:"Content"`
}
