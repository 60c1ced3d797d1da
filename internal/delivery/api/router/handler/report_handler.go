package handler

import (
	"insight/config"
	"insight/internal/delivery/api/response"
	domainerrors "insight/internal/domain/errors"
	"insight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const fallbackTopN = 5

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Config   *config.Config
}

// ReportHandler serves the sales reports
type ReportHandler struct {
	reportUC    usecase.ReportUsecase
	defaultTopN int
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	defaultTopN := fallbackTopN
	if params.Config != nil && params.Config.Report != nil && params.Config.Report.DefaultTopN > 0 {
		defaultTopN = params.Config.Report.DefaultTopN
	}

	return &ReportHandler{
		reportUC:    params.ReportUC,
		defaultTopN: defaultTopN,
	}
}

// TopNRequest is the query of ranked reports
type TopNRequest struct {
	N int `query:"n" validate:"gte=0"`
}

// CustomerReportsRequest is the query of the customer report list
type CustomerReportsRequest struct {
	MinRevenue string `query:"minRevenue" validate:"omitempty,numeric"`
	City       string `query:"city" validate:"omitempty,max=100"`
}

// OrderTotals handles GET /api/v1/reports/orders
func (h *ReportHandler) OrderTotals(c echo.Context) error {
	totals, err := h.reportUC.OrderTotals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, totals)
}

// TopCustomers handles GET /api/v1/reports/customers/top
func (h *ReportHandler) TopCustomers(c echo.Context) error {
	req, err := h.bindTopN(c)
	if err != nil {
		return err
	}

	ranks, err := h.reportUC.TopCustomers(c.Request().Context(), req.N)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ranks)
}

// ProductPerformance handles GET /api/v1/reports/products
func (h *ReportHandler) ProductPerformance(c echo.Context) error {
	products, err := h.reportUC.ProductPerformance(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

// CitySummary handles GET /api/v1/reports/cities
func (h *ReportHandler) CitySummary(c echo.Context) error {
	cities, err := h.reportUC.CitySummary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cities)
}

// CustomerReports handles GET /api/v1/reports/customers
func (h *ReportHandler) CustomerReports(c echo.Context) error {
	var req CustomerReportsRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed query")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	query := usecase.CustomerReportQuery{MinRevenue: decimal.Zero}
	if req.MinRevenue != "" {
		minRevenue, err := decimal.NewFromString(req.MinRevenue)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("minRevenue must be a decimal number")
		}
		query.MinRevenue = minRevenue
	}
	if req.City != "" {
		query.City = &req.City
	}

	reports, err := h.reportUC.CustomerReports(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reports)
}

// Summary handles GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c echo.Context) error {
	req, err := h.bindTopN(c)
	if err != nil {
		return err
	}

	summary, err := h.reportUC.Summary(c.Request().Context(), req.N)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, summary)
}

// bindTopN reads n, falling back to the configured default when absent.
func (h *ReportHandler) bindTopN(c echo.Context) (*TopNRequest, error) {
	req := &TopNRequest{N: h.defaultTopN}
	if err := echo.QueryParamsBinder(c).Int("n", &req.N).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("n must be an integer")
	}

	if err := c.Validate(req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return req, nil
}
