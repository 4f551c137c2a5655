package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/entities"
	"farmmate/pkg/profile/service"
)

type ProfileCtrl struct{ svc service.ProfileService }

func New(svc service.ProfileService) *ProfileCtrl { return &ProfileCtrl{svc} }

type profileReq struct {
	FullName       string  `json:"full_name"`
	FarmName       string  `json:"farm_name"`
	Location       string  `json:"location"`
	TotalLandAcres float64 `json:"total_land_acres"`
}

func uidOf(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := uidOf(c)
	if uid == "" { return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no user"}) }
	p, err := h.svc.Get(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	if p == nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"}) }
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Put(c echo.Context) error {
	uid := uidOf(c)
	if uid == "" { return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no user"}) }
	var req profileReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	p, err := h.svc.Save(uid, entities.Profile{
		FullName:       req.FullName,
		FarmName:       req.FarmName,
		Location:       req.Location,
		TotalLandAcres: req.TotalLandAcres,
	})
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, p)
}
