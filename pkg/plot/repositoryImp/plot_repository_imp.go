package repositoryImp

import (
	"farmmate/entities"
	"farmmate/pkg/plot/repository"
	"farmmate/pkg/record"
	"farmmate/pkg/storage"
)

type plotRepo struct{ store *storage.Adapter }

func New(store *storage.Adapter) repository.PlotRepository { return &plotRepo{store} }

func (r *plotRepo) LoadAll() []entities.Plot {
	r.store.MigrateIfNeeded(storage.PlotsKey, storage.LegacyPlotsKey)
	raws := r.store.Read(storage.PlotsKey, nil)
	return record.FilterPlots(raws, r.store.Debug())
}

func (r *plotRepo) StoreAll(ps []entities.Plot) error {
	return r.store.Write(storage.PlotsKey, ps)
}
