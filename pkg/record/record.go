// Package record checks the shape of raw stored collection elements.
// A record missing a required field, or carrying it with the wrong type,
// is unusable and gets dropped by the Filter helpers; everything else
// (including business invariants like stage bounds) is the services' job.
package record

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"farmmate/entities"
)

// ErrInvalid is returned by the entity services when a create request
// violates an entity invariant (negative acres, zero amount, ...).
var ErrInvalid = errors.New("invalid record")

// FieldError names the first field that made a stored record unusable.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return "record " + e.Reason
	}
	return "record field " + e.Field + " " + e.Reason
}

func missing(field string) *FieldError { return &FieldError{Field: field, Reason: "missing"} }

func decodeErr(err error) *FieldError {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return &FieldError{Field: ute.Field, Reason: "has type " + ute.Value}
	}
	return &FieldError{Reason: "is not an object"}
}

// Non-required fields decode leniently: a wrong type there zeroes the field
// instead of dropping the whole record.
func looseString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

func looseTime(raw json.RawMessage) time.Time {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

type plotProbe struct {
	ID        *string         `json:"id"`
	Name      *string         `json:"name"`
	CropKey   *string         `json:"cropKey"`
	Acres     *float64        `json:"acres"`
	Stage     *float64        `json:"stage"`
	CreatedAt json.RawMessage `json:"createdAt"`
	UpdatedAt json.RawMessage `json:"updatedAt"`
}

func DecodePlot(raw json.RawMessage) (entities.Plot, *FieldError) {
	var p plotProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.Plot{}, decodeErr(err)
	}
	switch {
	case p.ID == nil:
		return entities.Plot{}, missing("id")
	case p.Name == nil:
		return entities.Plot{}, missing("name")
	case p.CropKey == nil:
		return entities.Plot{}, missing("cropKey")
	case p.Acres == nil:
		return entities.Plot{}, missing("acres")
	case p.Stage == nil:
		return entities.Plot{}, missing("stage")
	}
	return entities.Plot{
		ID:        *p.ID,
		Name:      *p.Name,
		CropKey:   *p.CropKey,
		Acres:     *p.Acres,
		Stage:     int(*p.Stage),
		CreatedAt: looseTime(p.CreatedAt),
		UpdatedAt: looseTime(p.UpdatedAt),
	}, nil
}

type reminderProbe struct {
	ID        *string         `json:"id"`
	Label     *string         `json:"label"`
	Category  json.RawMessage `json:"category"`
	Time      json.RawMessage `json:"time"`
	Date      json.RawMessage `json:"date"`
	Done      *bool           `json:"done"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

func DecodeReminder(raw json.RawMessage) (entities.Reminder, *FieldError) {
	var p reminderProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.Reminder{}, decodeErr(err)
	}
	switch {
	case p.ID == nil:
		return entities.Reminder{}, missing("id")
	case p.Label == nil:
		return entities.Reminder{}, missing("label")
	case p.Done == nil:
		return entities.Reminder{}, missing("done")
	}
	return entities.Reminder{
		ID:        *p.ID,
		Label:     *p.Label,
		Category:  looseString(p.Category),
		Time:      looseString(p.Time),
		Date:      looseString(p.Date),
		Done:      *p.Done,
		CreatedAt: looseTime(p.CreatedAt),
	}, nil
}

type expenseProbe struct {
	ID          *string         `json:"id"`
	Category    json.RawMessage `json:"category"`
	Amount      *float64        `json:"amount"`
	Description json.RawMessage `json:"description"`
	Date        json.RawMessage `json:"date"`
	CreatedAt   json.RawMessage `json:"createdAt"`
}

func DecodeExpense(raw json.RawMessage) (entities.Expense, *FieldError) {
	var p expenseProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.Expense{}, decodeErr(err)
	}
	switch {
	case p.ID == nil:
		return entities.Expense{}, missing("id")
	case p.Amount == nil:
		return entities.Expense{}, missing("amount")
	}
	return entities.Expense{
		ID:          *p.ID,
		Category:    looseString(p.Category),
		Amount:      *p.Amount,
		Description: looseString(p.Description),
		Date:        looseString(p.Date),
		CreatedAt:   looseTime(p.CreatedAt),
	}, nil
}

// Filter helpers drop bad elements in place; a corrupted entry reads the
// same as one that never existed.

func FilterPlots(raws []json.RawMessage, debug bool) []entities.Plot {
	out := make([]entities.Plot, 0, len(raws))
	for _, r := range raws {
		p, ferr := DecodePlot(r)
		if ferr != nil {
			if debug {
				log.Printf("[record] plot dropped: %v", ferr)
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterReminders(raws []json.RawMessage, debug bool) []entities.Reminder {
	out := make([]entities.Reminder, 0, len(raws))
	for _, r := range raws {
		rm, ferr := DecodeReminder(r)
		if ferr != nil {
			if debug {
				log.Printf("[record] reminder dropped: %v", ferr)
			}
			continue
		}
		out = append(out, rm)
	}
	return out
}

func FilterExpenses(raws []json.RawMessage, debug bool) []entities.Expense {
	out := make([]entities.Expense, 0, len(raws))
	for _, r := range raws {
		e, ferr := DecodeExpense(r)
		if ferr != nil {
			if debug {
				log.Printf("[record] expense dropped: %v", ferr)
			}
			continue
		}
		out = append(out, e)
	}
	return out
}
