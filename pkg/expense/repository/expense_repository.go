package repository

import "farmmate/entities"

type ExpenseRepository interface {
	LoadAll() []entities.Expense
	StoreAll([]entities.Expense) error
}
