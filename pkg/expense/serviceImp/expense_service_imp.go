package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"farmmate/entities"
	repo "farmmate/pkg/expense/repository"
	"farmmate/pkg/expense/service"
	"farmmate/pkg/record"
)

type expenseSvc struct{ r repo.ExpenseRepository }

func NewExpenseService(r repo.ExpenseRepository) service.ExpenseService { return &expenseSvc{r} }

func (s *expenseSvc) GetAll() []entities.Expense { return s.r.LoadAll() }

func (s *expenseSvc) Create(e *entities.Expense) (*entities.Expense, error) {
	if e.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", record.ErrInvalid)
	}
	all := s.r.LoadAll()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	all = append(all, *e)
	if err := s.r.StoreAll(all); err != nil { return nil, err }
	return e, nil
}

// Update merges whatever the patch carries; the amount invariant is a
// create-time check only.
func (s *expenseSvc) Update(id string, patch service.ExpensePatch) (*entities.Expense, error) {
	all := s.r.LoadAll()
	for i := range all {
		if all[i].ID != id { continue }
		if patch.Category != nil { all[i].Category = *patch.Category }
		if patch.Amount != nil { all[i].Amount = *patch.Amount }
		if patch.Description != nil { all[i].Description = *patch.Description }
		if patch.Date != nil { all[i].Date = *patch.Date }
		if err := s.r.StoreAll(all); err != nil { return nil, err }
		out := all[i]
		return &out, nil
	}
	return nil, nil
}

func (s *expenseSvc) Delete(id string) (bool, error) {
	all := s.r.LoadAll()
	kept := make([]entities.Expense, 0, len(all))
	for _, e := range all {
		if e.ID != id { kept = append(kept, e) }
	}
	if len(kept) == len(all) { return false, nil }
	if err := s.r.StoreAll(kept); err != nil { return false, err }
	return true, nil
}
