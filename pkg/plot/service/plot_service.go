package service

import "farmmate/entities"

// PlotPatch carries the fields a PATCH may replace; nil means keep.
type PlotPatch struct {
	Name    *string  `json:"name"`
	CropKey *string  `json:"cropKey"`
	Acres   *float64 `json:"acres"`
	Stage   *int     `json:"stage"`
}

type PlotService interface {
	GetAll() []entities.Plot
	Create(p *entities.Plot) (*entities.Plot, error)
	Update(id string, patch PlotPatch) (*entities.Plot, error)
	Delete(id string) (bool, error)
}
