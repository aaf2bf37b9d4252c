package http

import (
	"net/http"

	"profitshare-backend/internal/usecase/registry"

	"github.com/labstack/echo/v4"
)

type RegistryHandler struct{ uc *registry.Usecase }

func NewRegistryHandler(uc *registry.Usecase) *RegistryHandler { return &RegistryHandler{uc: uc} }

type registerInvestorReq struct {
	OwnerID          string  `json:"owner_id"           validate:"required,hex32"`
	Name             string  `json:"name"               validate:"required"`
	ProfitPercentage float64 `json:"profit_percentage"  validate:"dec2,gt=0,lte=100"`
	ProfitAmount     float64 `json:"profit_amount"      validate:"dec2,gte=0"`
	InvestmentAmount float64 `json:"investment_amount"  validate:"dec2,gt=0"`
}

func (h *RegistryHandler) RegisterInvestor(c echo.Context) error {
	var req registerInvestorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RegisterInvestor(c.Request().Context(), registry.RegisterInvestorInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

type registerReferenceReq struct {
	OwnerID    string  `json:"owner_id"     validate:"required,hex32"`
	Name       string  `json:"name"         validate:"required"`
	ProfitRate float64 `json:"profit_rate"  validate:"dec2,gt=0,lte=100"`
}

func (h *RegistryHandler) RegisterReference(c echo.Context) error {
	var req registerReferenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RegisterReference(c.Request().Context(), registry.RegisterReferenceInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}
