package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePlotValid(t *testing.T) {
	raw := json.RawMessage(`{"id":"p1","name":"North Field","cropKey":"wheat","acres":2.5,"stage":40,"createdAt":"2025-03-01T10:00:00Z"}`)
	p, ferr := DecodePlot(raw)
	assert.Nil(t, ferr)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 2.5, p.Acres)
	assert.Equal(t, 40, p.Stage)
	assert.Equal(t, 2025, p.CreatedAt.Year())
}

func TestDecodePlotNamesFailingField(t *testing.T) {
	cases := []struct {
		raw   string
		field string
	}{
		{`{"name":"x","cropKey":"wheat","acres":1,"stage":0}`, "id"},
		{`{"id":"p1","cropKey":"wheat","acres":1,"stage":0}`, "name"},
		{`{"id":"p1","name":"x","cropKey":"wheat","stage":0}`, "acres"},
		{`{"id":"p1","name":"x","cropKey":"wheat","acres":"big","stage":0}`, "acres"},
		{`{"id":7,"name":"x","cropKey":"wheat","acres":1,"stage":0}`, "id"},
	}
	for _, tc := range cases {
		_, ferr := DecodePlot(json.RawMessage(tc.raw))
		assert.NotNil(t, ferr, tc.raw)
		assert.Equal(t, tc.field, ferr.Field, tc.raw)
	}
}

func TestDecodePlotNonObjects(t *testing.T) {
	for _, raw := range []string{`5`, `"str"`, `[1,2]`} {
		_, ferr := DecodePlot(json.RawMessage(raw))
		assert.NotNil(t, ferr, raw)
	}
	// null decodes as an object with everything missing
	_, ferr := DecodePlot(json.RawMessage(`null`))
	assert.NotNil(t, ferr)
	assert.Equal(t, "id", ferr.Field)
}

func TestDecodeReminder(t *testing.T) {
	r, ferr := DecodeReminder(json.RawMessage(`{"id":"r1","label":"Water field","category":"water","time":"06:30","date":"2025-03-02","done":false}`))
	assert.Nil(t, ferr)
	assert.Equal(t, "Water field", r.Label)
	assert.False(t, r.Done)

	_, ferr = DecodeReminder(json.RawMessage(`{"id":"r1","label":"x","done":"yes"}`))
	assert.NotNil(t, ferr)
	assert.Equal(t, "done", ferr.Field)

	// wrong type on a non-required field zeroes it instead of dropping
	r, ferr = DecodeReminder(json.RawMessage(`{"id":"r1","label":"x","done":true,"category":12}`))
	assert.Nil(t, ferr)
	assert.Equal(t, "", r.Category)
}

func TestDecodeExpense(t *testing.T) {
	e, ferr := DecodeExpense(json.RawMessage(`{"id":"e1","category":"seeds","amount":640.5,"date":"2025-03-02"}`))
	assert.Nil(t, ferr)
	assert.Equal(t, 640.5, e.Amount)

	_, ferr = DecodeExpense(json.RawMessage(`{"id":"e1","category":"seeds"}`))
	assert.NotNil(t, ferr)
	assert.Equal(t, "amount", ferr.Field)
}

func TestFilterDropsMalformedSilently(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id":"p1","name":"a","cropKey":"rice","acres":1,"stage":10}`),
		json.RawMessage(`{"broken":true}`),
		json.RawMessage(`42`),
		json.RawMessage(`{"id":"p2","name":"b","cropKey":"rice","acres":2,"stage":20}`),
	}
	out := FilterPlots(raws, false)
	assert.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p2", out[1].ID)
}
