package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByCaretaker(ctx context.Context, caretakerID string) ([]Medication, error)
	ListByPatient(ctx context.Context, patientID string) ([]Medication, error)
}
