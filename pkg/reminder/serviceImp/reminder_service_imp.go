package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmmate/entities"
	"farmmate/pkg/record"
	repo "farmmate/pkg/reminder/repository"
	"farmmate/pkg/reminder/service"
)

type reminderSvc struct{ r repo.ReminderRepository }

func NewReminderService(r repo.ReminderRepository) service.ReminderService { return &reminderSvc{r} }

func (s *reminderSvc) GetAll() []entities.Reminder { return s.r.LoadAll() }

func (s *reminderSvc) Create(rm *entities.Reminder) (*entities.Reminder, error) {
	if strings.TrimSpace(rm.Label) == "" {
		return nil, fmt.Errorf("%w: label is required", record.ErrInvalid)
	}
	all := s.r.LoadAll()
	rm.ID = uuid.NewString()
	rm.CreatedAt = time.Now().UTC()
	all = append(all, *rm)
	if err := s.r.StoreAll(all); err != nil { return nil, err }
	return rm, nil
}

func (s *reminderSvc) Update(id string, patch service.ReminderPatch) (*entities.Reminder, error) {
	all := s.r.LoadAll()
	for i := range all {
		if all[i].ID != id { continue }
		if patch.Label != nil { all[i].Label = *patch.Label }
		if patch.Category != nil { all[i].Category = *patch.Category }
		if patch.Time != nil { all[i].Time = *patch.Time }
		if patch.Date != nil { all[i].Date = *patch.Date }
		if patch.Done != nil { all[i].Done = *patch.Done }
		if err := s.r.StoreAll(all); err != nil { return nil, err }
		out := all[i]
		return &out, nil
	}
	return nil, nil
}

func (s *reminderSvc) Delete(id string) (bool, error) {
	all := s.r.LoadAll()
	kept := make([]entities.Reminder, 0, len(all))
	for _, rm := range all {
		if rm.ID != id { kept = append(kept, rm) }
	}
	if len(kept) == len(all) { return false, nil }
	if err := s.r.StoreAll(kept); err != nil { return false, err }
	return true, nil
}

func (s *reminderSvc) ToggleDone(id string) (*entities.Reminder, error) {
	for _, rm := range s.r.LoadAll() {
		if rm.ID == id {
			done := !rm.Done
			return s.Update(id, service.ReminderPatch{Done: &done})
		}
	}
	return nil, nil
}
