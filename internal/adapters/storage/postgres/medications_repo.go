package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medicare-companion/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

// days se lee con array_to_string para no depender del soporte de arrays de database/sql.
const medicationColumns = `
	id, patient_id, caretaker_id,
	name, dosage,
	array_to_string(days, ','), time_slot,
	created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (
			id, patient_id, caretaker_id,
			name, dosage,
			days, time_slot,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		m.ID,
		m.PatientID,
		m.CaretakerID,
		m.Name,
		m.Dosage,
		daysToTextArray(m.Days),
		string(m.TimeSlot),
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			name = $2,
			dosage = $3,
			days = $4,
			time_slot = $5,
			updated_at = $6
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Dosage,
		daysToTextArray(m.Days),
		string(m.TimeSlot),
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)
	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByCaretaker(ctx context.Context, caretakerID string) ([]medications.Medication, error) {
	return r.list(ctx, `SELECT `+medicationColumns+` FROM medications WHERE caretaker_id = $1 ORDER BY created_at ASC, id ASC`, caretakerID)
}

func (r *MedicationsRepo) ListByPatient(ctx context.Context, patientID string) ([]medications.Medication, error) {
	return r.list(ctx, `SELECT `+medicationColumns+` FROM medications WHERE patient_id = $1 ORDER BY created_at ASC, id ASC`, patientID)
}

func (r *MedicationsRepo) list(ctx context.Context, query string, arg string) ([]medications.Medication, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var m medications.Medication
	var days, slot string
	if err := s.Scan(
		&m.ID,
		&m.PatientID,
		&m.CaretakerID,
		&m.Name,
		&m.Dosage,
		&days,
		&slot,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}
	m.Days = textToDays(days)
	m.TimeSlot = medications.TimeSlot(slot)
	return m, nil
}

func daysToTextArray(in []medications.Weekday) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, string(d))
	}
	return out
}

func textToDays(s string) []medications.Weekday {
	out := make([]medications.Weekday, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, medications.Weekday(p))
		}
	}
	return out
}
