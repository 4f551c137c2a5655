package repository

import "farmmate/entities"

type ProfileRepository interface {
	// FindByUser returns at most one profile; nil, nil when the user has none.
	FindByUser(uid string) (*entities.Profile, error)
	Upsert(uid string, p entities.Profile) (*entities.Profile, error)
}
