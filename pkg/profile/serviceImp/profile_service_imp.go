package serviceImp

import (
	"farmmate/entities"
	repo "farmmate/pkg/profile/repository"
	"farmmate/pkg/profile/service"
)

type profileSvc struct{ r repo.ProfileRepository }

func NewProfileService(r repo.ProfileRepository) service.ProfileService { return &profileSvc{r} }

func (s *profileSvc) Get(uid string) (*entities.Profile, error) {
	return s.r.FindByUser(uid)
}

func (s *profileSvc) Save(uid string, p entities.Profile) (*entities.Profile, error) {
	return s.r.Upsert(uid, p)
}
