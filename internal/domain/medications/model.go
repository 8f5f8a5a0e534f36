package medications

import "time"

// Weekday usa la abreviatura fija de tres letras (Mon..Sun).
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// AllWeekdays en orden Mon..Sun.
var AllWeekdays = []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// TimeSlot es la franja del día en la que se puede marcar la toma.
// @Enum After Breakfast, Before Lunch, After Lunch, High Tea, Before Dinner, After Dinner
type TimeSlot string

const (
	SlotAfterBreakfast TimeSlot = "After Breakfast"
	SlotBeforeLunch    TimeSlot = "Before Lunch"
	SlotAfterLunch     TimeSlot = "After Lunch"
	SlotHighTea        TimeSlot = "High Tea"
	SlotBeforeDinner   TimeSlot = "Before Dinner"
	SlotAfterDinner    TimeSlot = "After Dinner"
)

// Medication es una asignación hecha por un caretaker a un paciente.
type Medication struct {
	ID          string
	PatientID   string
	CaretakerID string

	Name   string
	Dosage string // texto libre: "500mg", "2 gotas"

	Days     []Weekday // vacío = todos los días
	TimeSlot TimeSlot  // vacío = sin restricción horaria

	CreatedAt time.Time
	UpdatedAt time.Time
}
