package service

import "farmmate/entities"

type ProfileService interface {
	Get(uid string) (*entities.Profile, error)
	Save(uid string, p entities.Profile) (*entities.Profile, error)
}
