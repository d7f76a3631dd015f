package models

// Like represents an employee's like on a report. One row per (report, employee).
type Like struct {
	Model
	ReportID   uint     `json:"report_id" gorm:"not null;uniqueIndex:idx_likes_report_employee"`
	Report     Report   `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	EmployeeID uint     `json:"employee_id" gorm:"not null;uniqueIndex:idx_likes_report_employee;index"`
	Employee   Employee `json:"employee" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}
