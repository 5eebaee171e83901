package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	httperr "github.com/aevon-lab/salescope/internal/core/errors"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all dashboard API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/dashboard", s.HandleOverview)
	r.GET("/v1/dashboard/summary", s.HandleSummary)
	r.GET("/v1/dashboard/sales", s.HandleSalesChart)
	r.GET("/v1/dashboard/series", s.HandleSeries)
}

// HandleSalesChart handles GET /v1/dashboard/sales
// Query parameters: timeframe (daily, weekly, monthly, annually)
func (s *Service) HandleSalesChart(c *gin.Context) {
	resp, err := s.SalesChart(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeError(c, err, "Failed to build sales chart")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleSeries handles GET /v1/dashboard/series
// Query parameters: timeframe
func (s *Service) HandleSeries(c *gin.Context) {
	resp, err := s.Series(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeError(c, err, "Failed to aggregate sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleSummary handles GET /v1/dashboard/summary
func (s *Service) HandleSummary(c *gin.Context) {
	resp, err := s.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleOverview handles GET /v1/dashboard
// Query parameters: timeframe
func (s *Service) HandleOverview(c *gin.Context) {
	resp, err := s.Overview(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error, internalMsg string) {
	if errors.Is(err, sales.ErrInvalidArgument) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidArgumentError,
			Message:   "Invalid timeframe",
			Details:   err.Error(),
		})
		return
	}

	slog.Error(internalMsg, "error", err)
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   internalMsg,
	})
}
