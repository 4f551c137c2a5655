package service

import "farmmate/entities"

type ExpensePatch struct {
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

type ExpenseService interface {
	GetAll() []entities.Expense
	Create(e *entities.Expense) (*entities.Expense, error)
	Update(id string, patch ExpensePatch) (*entities.Expense, error)
	Delete(id string) (bool, error)
}
