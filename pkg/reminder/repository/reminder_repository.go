package repository

import "farmmate/entities"

type ReminderRepository interface {
	LoadAll() []entities.Reminder
	StoreAll([]entities.Reminder) error
}
