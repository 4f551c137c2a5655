package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"farmmate/entities"
	repoImp "farmmate/pkg/plot/repositoryImp"
	"farmmate/pkg/plot/service"
	"farmmate/pkg/record"
	"farmmate/pkg/storage"
)

func newSvc() (service.PlotService, *storage.Memory) {
	b := storage.NewMemory()
	return NewPlotService(repoImp.New(storage.New(b, false))), b
}

func TestCreateUpdateDeleteScenario(t *testing.T) {
	svc, _ := newSvc()

	p, err := svc.Create(&entities.Plot{Name: "North Field", CropKey: "wheat", Acres: 2.5, Stage: 0})
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 2.5, p.Acres)
	assert.Equal(t, 0, p.Stage)
	assert.False(t, p.CreatedAt.IsZero())

	all := svc.GetAll()
	assert.Len(t, all, 1)
	assert.Equal(t, p.ID, all[0].ID)
	assert.Equal(t, "North Field", all[0].Name)

	stage := 40
	upd, err := svc.Update(p.ID, service.PlotPatch{Stage: &stage})
	assert.NoError(t, err)
	assert.NotNil(t, upd)
	assert.Equal(t, p.ID, upd.ID)
	assert.Equal(t, 40, upd.Stage)
	assert.Equal(t, 2.5, upd.Acres, "unpatched fields keep their value")
	assert.Equal(t, p.CreatedAt, upd.CreatedAt, "createdAt immutable")

	ok, err := svc.Delete(p.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, svc.GetAll())
}

func TestCreateRejectsInvariantViolations(t *testing.T) {
	svc, _ := newSvc()

	_, err := svc.Create(&entities.Plot{Name: "x", CropKey: "rice", Acres: -1, Stage: 0})
	assert.True(t, errors.Is(err, record.ErrInvalid))

	_, err = svc.Create(&entities.Plot{Name: "x", CropKey: "rice", Acres: 1, Stage: 101})
	assert.True(t, errors.Is(err, record.ErrInvalid))

	assert.Empty(t, svc.GetAll(), "rejected creates never persist")
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	svc, _ := newSvc()
	_, err := svc.Create(&entities.Plot{Name: "a", CropKey: "rice", Acres: 1, Stage: 10})
	assert.NoError(t, err)
	before := svc.GetAll()

	stage := 50
	out, err := svc.Update("nope", service.PlotPatch{Stage: &stage})
	assert.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, before, svc.GetAll(), "collection untouched")
}

func TestDeleteUnknownIDReturnsFalse(t *testing.T) {
	svc, _ := newSvc()
	p, err := svc.Create(&entities.Plot{Name: "a", CropKey: "rice", Acres: 1, Stage: 10})
	assert.NoError(t, err)

	ok, err := svc.Delete("nope")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, svc.GetAll(), 1)

	ok, err = svc.Delete(p.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGetAllSkipsCorruptedEntries(t *testing.T) {
	svc, b := newSvc()
	_, err := svc.Create(&entities.Plot{Name: "a", CropKey: "rice", Acres: 1, Stage: 10})
	assert.NoError(t, err)

	// corrupt the stored array behind the service's back
	raw, _, _ := b.Get(storage.PlotsKey)
	assert.NoError(t, b.Set(storage.PlotsKey, raw[:len(raw)-1]+`,{"junk":1}]`))
	assert.Len(t, svc.GetAll(), 1)
}

func TestLegacyKeyMigratesOnFirstRead(t *testing.T) {
	svc, b := newSvc()
	legacy := `[{"id":"old1","name":"Legacy","cropKey":"rice","acres":1.5,"stage":30}]`
	assert.NoError(t, b.Set(storage.LegacyPlotsKey, legacy))

	all := svc.GetAll()
	assert.Len(t, all, 1)
	assert.Equal(t, "old1", all[0].ID)

	cur, ok, _ := b.Get(storage.PlotsKey)
	assert.True(t, ok)
	assert.Equal(t, legacy, cur, "versioned key now holds the legacy array")
}
