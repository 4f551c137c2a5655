package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"farmmate/entities"
	"farmmate/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) FindByUser(uid string) (*entities.Profile, error) {
	var p entities.Profile
	err := r.db.Where("user_id = ?", uid).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) { return nil, nil }
	if err != nil { return nil, err }
	return &p, nil
}

// Upsert updates the existing row when one is found by user id, inserts
// otherwise. CreatedAt/UpdatedAt are gorm-assigned.
func (r *profileRepo) Upsert(uid string, in entities.Profile) (*entities.Profile, error) {
	cur, err := r.FindByUser(uid)
	if err != nil { return nil, err }
	if cur == nil {
		in.ProfileID = 0
		in.UserID = uid
		if err := r.db.Create(&in).Error; err != nil { return nil, err }
		return &in, nil
	}
	cur.FullName = in.FullName
	cur.FarmName = in.FarmName
	cur.Location = in.Location
	cur.TotalLandAcres = in.TotalLandAcres
	if err := r.db.Save(cur).Error; err != nil { return nil, err }
	return cur, nil
}
