package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/entities"
	"farmmate/pkg/record"
	"farmmate/pkg/reminder/service"
)

type ReminderCtrl struct{ svc service.ReminderService }

func New(svc service.ReminderService) *ReminderCtrl { return &ReminderCtrl{svc} }

type reminderReq struct {
	Label    string `json:"label"`
	Category string `json:"category"`
	Time     string `json:"time"`
	Date     string `json:"date"`
}

func (h *ReminderCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *ReminderCtrl) Create(c echo.Context) error {
	var req reminderReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Create(&entities.Reminder{Label: req.Label, Category: req.Category, Time: req.Time, Date: req.Date})
	if err != nil {
		if errors.Is(err, record.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ReminderCtrl) Patch(c echo.Context) error {
	var patch service.ReminderPatch
	if err := c.Bind(&patch); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Update(c.Param("id"), patch)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if out == nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "reminder not found"}) }
	return c.JSON(http.StatusOK, out)
}

func (h *ReminderCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if !ok { return c.JSON(http.StatusNotFound, map[string]string{"error": "reminder not found"}) }
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ReminderCtrl) Toggle(c echo.Context) error {
	out, err := h.svc.ToggleDone(c.Param("id"))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if out == nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "reminder not found"}) }
	return c.JSON(http.StatusOK, out)
}
