package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required,max=10"`
	Days     []string `json:"days" validate:"dive,weekday"`
	TimeSlot string   `json:"time_slot" validate:"omitempty,timeslot"`
	Role     string   `json:"role" validate:"omitempty,role"`
	Date     string   `json:"date" validate:"omitempty,date"`
}

func newTestValidator() *Validator {
	v := New()
	v.RegisterEnum("weekday", "must be a weekday", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")
	v.RegisterEnum("timeslot", "must be a known time slot", "After Breakfast", "High Tea")
	v.RegisterEnum("role", "must be patient or caretaker", "patient", "caretaker")
	return v
}

func TestValidator_Valid(t *testing.T) {
	v := newTestValidator()
	err := v.Struct(sample{
		Name:     "Aspirin",
		Days:     []string{"Mon", "Fri"},
		TimeSlot: "High Tea",
		Role:     "caretaker",
		Date:     "2024-06-01",
	})
	require.NoError(t, err)
}

func TestValidator_EmptySlotAllowed(t *testing.T) {
	require.NoError(t, newTestValidator().Struct(sample{Name: "x"}))
}

func TestValidator_ReportsFieldsByJSONName(t *testing.T) {
	err := newTestValidator().Struct(sample{
		Name:     "",
		Days:     []string{"Mon", "monday"},
		TimeSlot: "Midnight Snack",
		Role:     "admin",
		Date:     "01/06/2024",
	})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Contains(t, verr.Fields, "days[1]")
	assert.Equal(t, "must be a known time slot", verr.Fields["time_slot"])
	assert.Equal(t, "must be patient or caretaker", verr.Fields["role"])
	assert.Equal(t, "must be YYYY-MM-DD", verr.Fields["date"])
}
