package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/entities"
	"farmmate/pkg/expense/report"
	"farmmate/pkg/expense/service"
	"farmmate/pkg/record"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExpenseCtrl struct{ svc service.ExpenseService }

func New(svc service.ExpenseService) *ExpenseCtrl { return &ExpenseCtrl{svc} }

type expenseReq struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (h *ExpenseCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Create(&entities.Expense{Category: req.Category, Amount: req.Amount, Description: req.Description, Date: req.Date})
	if err != nil {
		if errors.Is(err, record.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ExpenseCtrl) Patch(c echo.Context) error {
	var patch service.ExpensePatch
	if err := c.Bind(&patch); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Update(c.Param("id"), patch)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if out == nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "expense not found"}) }
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if !ok { return c.JSON(http.StatusNotFound, map[string]string{"error": "expense not found"}) }
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ExpenseCtrl) Export(c echo.Context) error {
	x, err := report.Workbook(h.svc.GetAll())
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, xlsxMIME)
	c.Response().WriteHeader(http.StatusOK)
	_, err = x.WriteTo(c.Response())
	return err
}
