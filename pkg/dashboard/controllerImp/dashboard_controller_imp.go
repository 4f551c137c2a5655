package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/dashboard"
	expSvc "farmmate/pkg/expense/service"
	plotSvc "farmmate/pkg/plot/service"
)

type DashboardCtrl struct {
	plots    plotSvc.PlotService
	expenses expSvc.ExpenseService
}

func New(p plotSvc.PlotService, e expSvc.ExpenseService) *DashboardCtrl {
	return &DashboardCtrl{plots: p, expenses: e}
}

func (h *DashboardCtrl) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboard.Compute(h.plots.GetAll(), h.expenses.GetAll()))
}

func (h *DashboardCtrl) Monthly(c echo.Context) error {
	year := time.Now().Year()
	if q := c.QueryParam("year"); q != "" {
		if y, err := strconv.Atoi(q); err == nil { year = y }
	}
	return c.JSON(http.StatusOK, dashboard.MonthlyBuckets(h.expenses.GetAll(), year))
}

func (h *DashboardCtrl) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboard.CategoryBuckets(h.expenses.GetAll()))
}
