package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/entities"
	"farmmate/pkg/plot/service"
	"farmmate/pkg/record"
)

type PlotCtrl struct{ svc service.PlotService }

func New(svc service.PlotService) *PlotCtrl { return &PlotCtrl{svc} }

type plotReq struct {
	Name    string  `json:"name"`
	CropKey string  `json:"cropKey"`
	Acres   float64 `json:"acres"`
	Stage   int     `json:"stage"`
}

func (h *PlotCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Create(&entities.Plot{Name: req.Name, CropKey: req.CropKey, Acres: req.Acres, Stage: req.Stage})
	if err != nil {
		if errors.Is(err, record.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PlotCtrl) Patch(c echo.Context) error {
	var patch service.PlotPatch
	if err := c.Bind(&patch); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	out, err := h.svc.Update(c.Param("id"), patch)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if out == nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "plot not found"}) }
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if !ok { return c.JSON(http.StatusNotFound, map[string]string{"error": "plot not found"}) }
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
