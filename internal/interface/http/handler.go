package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

// Handler wires the HTTP transport to the horoscope service.
type Handler struct {
	svc    astrology.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc astrology.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"engineVersion": astrology.EngineVersion,
		"cache":         h.svc.CacheStats(),
	})
}

// GenerateHoroscope computes a birth chart.
func (h *Handler) GenerateHoroscope(c *gin.Context) {
	var req astrology.BirthDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	chart, err := h.svc.GenerateBasicHoroscope(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, chart)
}

// AnalyzeCompatibility scores two birth charts against each other.
func (h *Handler) AnalyzeCompatibility(c *gin.Context) {
	var req astrology.CompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.svc.AnalyzeCompatibility(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// RankMatches orders candidates by their guna score with the seeker.
func (h *Handler) RankMatches(c *gin.Context) {
	var req astrology.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.svc.RankMatches(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DailyPrediction returns the reading for a nakshatra.
func (h *Handler) DailyPrediction(c *gin.Context) {
	req := astrology.PredictionRequest{
		Nakshatra: c.Param("nakshatra"),
		Date:      c.Query("date"),
	}
	prediction, err := h.svc.DailyPrediction(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// SaveChart stores a chart for the authenticated owner.
func (h *Handler) SaveChart(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req astrology.SaveChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	record, err := h.svc.SaveChart(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListCharts returns the owner's saved charts.
func (h *Handler) ListCharts(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	records, err := h.svc.ListCharts(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"charts": records})
}

// GetChart returns one saved chart.
func (h *Handler) GetChart(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	record, err := h.svc.GetChart(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteChart removes one saved chart.
func (h *Handler) DeleteChart(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteChart(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
