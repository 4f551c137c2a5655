package repositoryImp

import (
	"farmmate/entities"
	"farmmate/pkg/record"
	"farmmate/pkg/reminder/repository"
	"farmmate/pkg/storage"
)

type reminderRepo struct{ store *storage.Adapter }

func New(store *storage.Adapter) repository.ReminderRepository { return &reminderRepo{store} }

func (r *reminderRepo) LoadAll() []entities.Reminder {
	r.store.MigrateIfNeeded(storage.RemindersKey, storage.LegacyRemindersKey)
	raws := r.store.Read(storage.RemindersKey, nil)
	return record.FilterReminders(raws, r.store.Debug())
}

func (r *reminderRepo) StoreAll(rs []entities.Reminder) error {
	return r.store.Write(storage.RemindersKey, rs)
}
