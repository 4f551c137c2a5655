package service

import "farmmate/entities"

type ReminderPatch struct {
	Label    *string `json:"label"`
	Category *string `json:"category"`
	Time     *string `json:"time"`
	Date     *string `json:"date"`
	Done     *bool   `json:"done"`
}

type ReminderService interface {
	GetAll() []entities.Reminder
	Create(r *entities.Reminder) (*entities.Reminder, error)
	Update(id string, patch ReminderPatch) (*entities.Reminder, error)
	Delete(id string) (bool, error)
	ToggleDone(id string) (*entities.Reminder, error)
}
