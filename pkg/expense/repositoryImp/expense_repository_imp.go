package repositoryImp

import (
	"farmmate/entities"
	"farmmate/pkg/expense/repository"
	"farmmate/pkg/record"
	"farmmate/pkg/storage"
)

type expenseRepo struct{ store *storage.Adapter }

func New(store *storage.Adapter) repository.ExpenseRepository { return &expenseRepo{store} }

func (r *expenseRepo) LoadAll() []entities.Expense {
	r.store.MigrateIfNeeded(storage.ExpensesKey, storage.LegacyExpensesKey)
	raws := r.store.Read(storage.ExpensesKey, nil)
	return record.FilterExpenses(raws, r.store.Debug())
}

func (r *expenseRepo) StoreAll(es []entities.Expense) error {
	return r.store.Write(storage.ExpensesKey, es)
}
