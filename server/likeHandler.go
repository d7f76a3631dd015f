package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleLikeReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}

		liked, err := s.LikeService.LikeReport(c.Request.Context(), reportID, viewerID(c))
		if err != nil {
			s.renderError(c, err)
			return
		}

		message := "You liked the report."
		if !liked {
			message = "You already like this report."
		}
		s.redirectWithFlash(c, "/reports", message)
	}
}

func (s *Server) handleUnlikeReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		if _, err := s.ReportService.FindReport(c.Request.Context(), reportID); err != nil {
			s.renderError(c, err)
			return
		}

		removed, err := s.LikeService.UnlikeReport(c.Request.Context(), reportID, viewerID(c))
		if err != nil {
			s.renderError(c, err)
			return
		}

		message := "You no longer like the report."
		if !removed {
			message = "You had not liked this report."
		}
		s.redirectWithFlash(c, "/reports", message)
	}
}

func (s *Server) handleGetLikes() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reportID, err := idParam(c, "id")
		if err != nil {
			s.renderError(c, err)
			return
		}
		report, err := s.ReportService.FindReport(ctx, reportID)
		if err != nil {
			s.renderError(c, err)
			return
		}

		page := pageFromQuery(c)
		likes, err := s.LikeService.GetLikesPerPage(ctx, reportID, page)
		if err != nil {
			s.renderError(c, err)
			return
		}
		count, err := s.LikeService.CountLikes(ctx, reportID)
		if err != nil {
			s.renderError(c, err)
			return
		}

		s.render(c, http.StatusOK, "report_likes.html", gin.H{
			"report":      toReportView(report, viewerID(c)),
			"likes":       toLikeViews(likes),
			"likes_count": count,
			"page":        page,
			"max_row":     s.LikeService.PageSize(),
		})
	}
}
