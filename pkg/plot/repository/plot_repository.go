package repository

import "farmmate/entities"

type PlotRepository interface {
	LoadAll() []entities.Plot
	StoreAll([]entities.Plot) error
}
