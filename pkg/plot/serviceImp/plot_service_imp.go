package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"farmmate/entities"
	repo "farmmate/pkg/plot/repository"
	"farmmate/pkg/plot/service"
	"farmmate/pkg/record"
)

type plotSvc struct{ r repo.PlotRepository }

func NewPlotService(r repo.PlotRepository) service.PlotService { return &plotSvc{r} }

func (s *plotSvc) GetAll() []entities.Plot { return s.r.LoadAll() }

func (s *plotSvc) Create(p *entities.Plot) (*entities.Plot, error) {
	if p.Acres < 0 || p.Stage < 0 || p.Stage > 100 {
		return nil, fmt.Errorf("%w: acres must be >= 0, stage 0-100", record.ErrInvalid)
	}
	all := s.r.LoadAll()
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	all = append(all, *p)
	if err := s.r.StoreAll(all); err != nil { return nil, err }
	return p, nil
}

func (s *plotSvc) Update(id string, patch service.PlotPatch) (*entities.Plot, error) {
	all := s.r.LoadAll()
	for i := range all {
		if all[i].ID != id { continue }
		if patch.Name != nil { all[i].Name = *patch.Name }
		if patch.CropKey != nil { all[i].CropKey = *patch.CropKey }
		if patch.Acres != nil { all[i].Acres = *patch.Acres }
		if patch.Stage != nil { all[i].Stage = *patch.Stage }
		all[i].UpdatedAt = time.Now().UTC()
		if err := s.r.StoreAll(all); err != nil { return nil, err }
		out := all[i]
		return &out, nil
	}
	// unknown id is a normal outcome, not an error
	return nil, nil
}

func (s *plotSvc) Delete(id string) (bool, error) {
	all := s.r.LoadAll()
	kept := make([]entities.Plot, 0, len(all))
	for _, p := range all {
		if p.ID != id { kept = append(kept, p) }
	}
	if len(kept) == len(all) { return false, nil }
	if err := s.r.StoreAll(kept); err != nil { return false, err }
	return true, nil
}
