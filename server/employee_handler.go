package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/dailyreport/models"
)

func (s *Server) handleGetAllEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := pageFromQuery(c)

		employees, err := s.EmployeeService.GetAllPerPage(ctx, page)
		if err != nil {
			s.renderError(c, err)
			return
		}
		count, err := s.EmployeeService.CountAll(ctx)
		if err != nil {
			s.renderError(c, err)
			return
		}

		s.render(c, http.StatusOK, "employees_index.html", gin.H{
			"employees":       toEmployeeViews(employees),
			"employees_count": count,
			"page":            page,
			"max_row":         s.EmployeeService.PageSize(),
		})
	}
}

func (s *Server) handleNewEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renderEmployeeForm(c, http.StatusOK, models.EmployeeRequest{}, nil)
	}
}

func (s *Server) handleCreateEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.EmployeeRequest
		if err := c.ShouldBind(&form); err != nil {
			s.renderEmployeeForm(c, http.StatusUnprocessableEntity, form, []string{err.Error()})
			return
		}

		employee, messages, err := s.EmployeeService.CreateEmployee(c.Request.Context(), &form)
		if err != nil {
			s.renderError(c, err)
			return
		}
		if len(messages) > 0 {
			s.renderEmployeeForm(c, http.StatusUnprocessableEntity, form, messages)
			return
		}
		s.redirectWithFlash(c, "/employees", "Employee "+employee.Code+" created.")
	}
}

func (s *Server) handleShowEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		employee, err := s.EmployeeService.FindEmployee(c.Request.Context(), id)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.render(c, http.StatusOK, "employee_show.html", gin.H{
			"employee": toEmployeeView(employee),
		})
	}
}

func (s *Server) renderEmployeeForm(c *gin.Context, status int, form models.EmployeeRequest, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	form.Password = ""
	s.render(c, status, "employee_form.html", gin.H{
		"employee": form,
		"errors":   messages,
	})
}
