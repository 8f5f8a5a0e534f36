package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"medicare-companion/internal/domain/medlogs"
)

type MedLogsRepo struct {
	db *sql.DB
}

func NewMedLogsRepo(db *sql.DB) *MedLogsRepo {
	return &MedLogsRepo{db: db}
}

const logColumns = `id, medication_id, patient_id, date, taken, recorded_by, created_at`

// Create usa ON CONFLICT DO NOTHING sobre el índice único (medication_id, patient_id, date).
func (r *MedLogsRepo) Create(ctx context.Context, e medlogs.LogEntry) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_logs (`+logColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (medication_id, patient_id, date) DO NOTHING
	`,
		e.ID,
		e.MedicationID,
		e.PatientID,
		medlogs.FormatDate(e.Date),
		e.Taken,
		e.RecordedBy,
		e.CreatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert medication log: %w", err)
	}
	if n == 0 {
		return medlogs.ErrDuplicate
	}
	return nil
}

func (r *MedLogsRepo) FindByKey(ctx context.Context, medicationID, patientID string, date time.Time) ([]medlogs.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM medication_logs
		WHERE medication_id = $1 AND patient_id = $2 AND date = $3
		ORDER BY created_at ASC
	`, medicationID, patientID, medlogs.FormatDate(date))
	if err != nil {
		return nil, err
	}
	return scanLogs(rows)
}

func (r *MedLogsRepo) List(ctx context.Context, filter medlogs.ListFilter) ([]medlogs.LogEntry, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + logColumns + ` FROM medication_logs WHERE TRUE`)

	args := []any{}
	argN := 1

	if p := strings.TrimSpace(filter.PatientID); p != "" {
		sb.WriteString(fmt.Sprintf(" AND patient_id = $%d", argN))
		args = append(args, p)
		argN++
	}
	if len(filter.MedicationIDs) > 0 {
		placeholders := make([]string, 0, len(filter.MedicationIDs))
		for _, id := range filter.MedicationIDs {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, id)
			argN++
		}
		sb.WriteString(" AND medication_id IN (" + strings.Join(placeholders, ",") + ")")
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, medlogs.FormatDate(*filter.From))
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argN))
		args = append(args, medlogs.FormatDate(*filter.To))
		argN++
	}
	sb.WriteString(" ORDER BY date DESC, created_at DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return scanLogs(rows)
}

func scanLogs(rows *sql.Rows) ([]medlogs.LogEntry, error) {
	defer rows.Close()

	out := make([]medlogs.LogEntry, 0)
	for rows.Next() {
		var e medlogs.LogEntry
		if err := rows.Scan(
			&e.ID,
			&e.MedicationID,
			&e.PatientID,
			&e.Date,
			&e.Taken,
			&e.RecordedBy,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		// date es DATE; pgx lo entrega a medianoche UTC, lo normalizamos igual
		e.Date = medlogs.DateOnly(e.Date)
		out = append(out, e)
	}
	return out, rows.Err()
}
