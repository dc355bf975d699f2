package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
)

const (
	intakeColumns    = `id, user_id, name, dosage, frequency_kind, frequency_times, frequency, is_active, created_at, updated_at`
	intakeLogColumns = `id, item_id, user_id, taken_at, notes, created_at`
)

type intakeRepository struct {
	db       *sql.DB
	kind     entity.IntakeKind
	table    string
	logTable string
}

// NewMedicationRepository creates a SQLite repository for medications
func NewMedicationRepository(s *Store) repository.IntakeRepository {
	return &intakeRepository{db: s.db, kind: entity.IntakeKindMedication, table: "medications", logTable: "medication_logs"}
}

// NewSupplementRepository creates a SQLite repository for supplements
func NewSupplementRepository(s *Store) repository.IntakeRepository {
	return &intakeRepository{db: s.db, kind: entity.IntakeKindSupplement, table: "supplements", logTable: "supplement_logs"}
}

func (r *intakeRepository) Kind() entity.IntakeKind {
	return r.kind
}

func (r *intakeRepository) Create(ctx context.Context, item *entity.Intake) error {
	query := `INSERT INTO ` + r.table + ` (` + intakeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID.String(),
		item.UserID,
		item.Name,
		nullString(item.Dosage),
		string(item.Frequency.Kind),
		item.Frequency.Times,
		item.Frequency.Label,
		item.IsActive,
		formatTime(item.CreatedAt),
		formatTime(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}

	return nil
}

func (r *intakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Intake, error) {
	query := `SELECT ` + intakeColumns + ` FROM ` + r.table + ` WHERE id = ?`

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", r.kind, id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}

	return item, nil
}

func (r *intakeRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Intake, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, filter.ActiveOnly, "created_at", "is_active")
	query := `SELECT ` + intakeColumns + ` FROM ` + r.table + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", r.kind, err)
	}
	defer rows.Close()

	items := []*entity.Intake{}
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.kind, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *intakeRepository) Update(ctx context.Context, item *entity.Intake) error {
	query := `UPDATE ` + r.table + `
		SET name = ?, dosage = ?, frequency_kind = ?, frequency_times = ?, frequency = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		nullString(item.Dosage),
		string(item.Frequency.Kind),
		item.Frequency.Times,
		item.Frequency.Label,
		item.IsActive,
		formatTime(item.UpdatedAt),
		item.ID.String(),
		item.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.kind, err)
	}

	return checkAffected(result, fmt.Errorf("%s %s: %w", r.kind, item.ID, entity.ErrNotFound))
}

func (r *intakeRepository) CreateLog(ctx context.Context, log *entity.IntakeLog) error {
	query := `INSERT INTO ` + r.logTable + ` (` + intakeLogColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		log.ID.String(),
		log.ItemID.String(),
		log.UserID,
		formatTime(log.TakenAt),
		nullString(log.Notes),
		formatTime(log.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s log: %w", r.kind, err)
	}

	return nil
}

func (r *intakeRepository) ListLogs(ctx context.Context, filter repository.Filter) ([]*entity.IntakeLog, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, false, "taken_at", "")
	query := `SELECT ` + intakeLogColumns + ` FROM ` + r.logTable + clause + ` ORDER BY taken_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s logs: %w", r.kind, err)
	}
	defer rows.Close()

	logs := []*entity.IntakeLog{}
	for rows.Next() {
		var (
			l                  entity.IntakeLog
			id, itemID         string
			takenAt, createdAt string
			notes              sql.NullString
		)
		if err := rows.Scan(&id, &itemID, &l.UserID, &takenAt, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s log: %w", r.kind, err)
		}
		if l.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if l.ItemID, err = uuid.Parse(itemID); err != nil {
			return nil, err
		}
		if l.TakenAt, err = parseTime(takenAt); err != nil {
			return nil, err
		}
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		l.Notes = stringPtr(notes)
		l.Kind = r.kind
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

func (r *intakeRepository) scanItem(row scanner) (*entity.Intake, error) {
	var (
		item                 entity.Intake
		id                   string
		dosage               sql.NullString
		createdAt, updatedAt string
		kind                 string
	)

	err := row.Scan(
		&id,
		&item.UserID,
		&item.Name,
		&dosage,
		&kind,
		&item.Frequency.Times,
		&item.Frequency.Label,
		&item.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if item.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	item.Frequency.Kind = entity.FrequencyKind(kind)
	item.Dosage = stringPtr(dosage)
	item.Kind = r.kind

	return &item, nil
}
