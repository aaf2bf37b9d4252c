package http

import (
	"errors"
	"log"
	"net/http"

	"profitshare-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

func (h *StatsHandler) GetInvestorStats(c echo.Context) error {
	investorID := c.Param("investor_id")
	if !reHex32.MatchString(investorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid investor_id path param"})
	}

	dto, err := h.uc.Get(c.Request().Context(), investorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "investor not found"})
	}
	if err != nil {
		log.Printf("http: investor stats %s: %v", investorID, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}
