package server

import (
	"time"

	"github.com/techagentng/dailyreport/models"
)

// View models are the only shapes handed to templates and JSON clients.

type EmployeeView struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	AdminFlag bool      `json:"admin_flag"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportView struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ReportDate   string    `json:"report_date"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LikeCount    int64     `json:"like_count"`
	Editable     bool      `json:"editable"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LikeView struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func toEmployeeView(e *models.Employee) EmployeeView {
	return EmployeeView{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		AdminFlag: e.AdminFlag,
		CreatedAt: e.CreatedAt,
	}
}

func toEmployeeViews(employees []models.Employee) []EmployeeView {
	views := make([]EmployeeView, 0, len(employees))
	for i := range employees {
		views = append(views, toEmployeeView(&employees[i]))
	}
	return views
}

// toReportView maps a report for viewerID; Editable is true only for the author.
func toReportView(r *models.Report, viewerID uint) ReportView {
	return ReportView{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.Employee.Name,
		ReportDate:   r.ReportDate.Format(models.ReportDateLayout),
		Title:        r.Title,
		Content:      r.Content,
		LikeCount:    r.LikeCount,
		Editable:     r.IsAuthoredBy(viewerID),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toReportViews(reports []models.Report, viewerID uint) []ReportView {
	views := make([]ReportView, 0, len(reports))
	for i := range reports {
		views = append(views, toReportView(&reports[i], viewerID))
	}
	return views
}

func toLikeViews(likes []models.Like) []LikeView {
	views := make([]LikeView, 0, len(likes))
	for _, l := range likes {
		views = append(views, LikeView{
			ID:           l.ID,
			EmployeeID:   l.EmployeeID,
			EmployeeName: l.Employee.Name,
			CreatedAt:    l.CreatedAt,
		})
	}
	return views
}
