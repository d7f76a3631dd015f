package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/dailyreport/errors"
	"github.com/techagentng/dailyreport/models"
)

func viewerID(c *gin.Context) uint {
	if e := currentEmployee(c); e != nil {
		return e.ID
	}
	return 0
}

func (s *Server) handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/reports")
	}
}

func (s *Server) handleGetAllReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := pageFromQuery(c)

		reports, err := s.ReportService.GetAllPerPage(ctx, page)
		if err != nil {
			s.renderError(c, err)
			return
		}
		count, err := s.ReportService.CountAll(ctx)
		if err != nil {
			s.renderError(c, err)
			return
		}

		s.render(c, http.StatusOK, "reports_index.html", gin.H{
			"heading":       "Reports",
			"base_path":     "/reports",
			"reports":       toReportViews(reports, viewerID(c)),
			"reports_count": count,
			"page":          page,
			"max_row":       s.ReportService.PageSize(),
		})
	}
}

func (s *Server) handleGetMyReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := pageFromQuery(c)
		me := viewerID(c)

		reports, err := s.ReportService.GetMinePerPage(ctx, me, page)
		if err != nil {
			s.renderError(c, err)
			return
		}
		count, err := s.ReportService.CountAllMine(ctx, me)
		if err != nil {
			s.renderError(c, err)
			return
		}

		s.render(c, http.StatusOK, "reports_index.html", gin.H{
			"heading":       "My reports",
			"base_path":     "/reports/mine",
			"reports":       toReportViews(reports, me),
			"reports_count": count,
			"page":          page,
			"max_row":       s.ReportService.PageSize(),
		})
	}
}

func (s *Server) handleNewReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		form := models.ReportRequest{
			ReportDate: s.ReportService.Today().Format(models.ReportDateLayout),
		}
		s.renderReportForm(c, http.StatusOK, "/reports", form, nil)
	}
}

func (s *Server) handleCreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ReportRequest
		if err := c.ShouldBind(&form); err != nil {
			s.renderReportForm(c, http.StatusUnprocessableEntity, "/reports", form, []string{err.Error()})
			return
		}

		_, messages, err := s.ReportService.CreateReport(c.Request.Context(), currentEmployee(c), &form)
		if err != nil {
			s.renderError(c, err)
			return
		}
		if len(messages) > 0 {
			s.renderReportForm(c, http.StatusUnprocessableEntity, "/reports", form, messages)
			return
		}
		s.redirectWithFlash(c, "/reports", "Report created.")
	}
}

func (s *Server) handleShowReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		report, err := s.ReportService.FindReport(ctx, id)
		if err != nil {
			s.renderError(c, err)
			return
		}

		me := viewerID(c)
		likesCount, err := s.LikeService.CountLikes(ctx, id)
		if err != nil {
			s.renderError(c, err)
			return
		}
		likedCount, err := s.LikeService.CountLikedBy(ctx, id, me)
		if err != nil {
			s.renderError(c, err)
			return
		}

		s.render(c, http.StatusOK, "report_show.html", gin.H{
			"report":      toReportView(report, me),
			"likes_count": likesCount,
			"liked_count": likedCount,
			"has_liked":   likedCount > 0,
		})
	}
}

func (s *Server) handleEditReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		report, err := s.ReportService.FindReport(c.Request.Context(), id)
		if err != nil {
			s.renderError(c, err)
			return
		}
		if !report.IsAuthoredBy(viewerID(c)) {
			s.renderError(c, errs.ErrForbidden)
			return
		}

		form := models.ReportRequest{
			ReportDate: report.ReportDate.Format(models.ReportDateLayout),
			Title:      report.Title,
			Content:    report.Content,
		}
		s.renderReportForm(c, http.StatusOK, fmt.Sprintf("/reports/%d", id), form, nil)
	}
}

func (s *Server) handleUpdateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		action := fmt.Sprintf("/reports/%d", id)

		var form models.ReportRequest
		if err := c.ShouldBind(&form); err != nil {
			s.renderReportForm(c, http.StatusUnprocessableEntity, action, form, []string{err.Error()})
			return
		}

		_, messages, err := s.ReportService.UpdateReport(c.Request.Context(), currentEmployee(c), id, &form)
		if err != nil {
			s.renderError(c, err)
			return
		}
		if len(messages) > 0 {
			s.renderReportForm(c, http.StatusUnprocessableEntity, action, form, messages)
			return
		}
		s.redirectWithFlash(c, "/reports", "Report updated.")
	}
}

func (s *Server) renderReportForm(c *gin.Context, status int, action string, form models.ReportRequest, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	s.render(c, status, "report_form.html", gin.H{
		"action": action,
		"report": form,
		"errors": messages,
	})
}
