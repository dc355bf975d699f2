package postgres

import (
	"context"
	"errors"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	intakeColumns    = `id, user_id, name, dosage, frequency_kind, frequency_times, frequency, is_active, created_at, updated_at`
	intakeLogColumns = `id, item_id, user_id, taken_at, notes, created_at`
)

type intakeRepository struct {
	pool     *pgxpool.Pool
	kind     entity.IntakeKind
	table    string
	logTable string
}

// NewMedicationRepository creates a PostgreSQL repository for medications
func NewMedicationRepository(pool *pgxpool.Pool) repository.IntakeRepository {
	return &intakeRepository{pool: pool, kind: entity.IntakeKindMedication, table: "medications", logTable: "medication_logs"}
}

// NewSupplementRepository creates a PostgreSQL repository for supplements
func NewSupplementRepository(pool *pgxpool.Pool) repository.IntakeRepository {
	return &intakeRepository{pool: pool, kind: entity.IntakeKindSupplement, table: "supplements", logTable: "supplement_logs"}
}

func (r *intakeRepository) Kind() entity.IntakeKind {
	return r.kind
}

func (r *intakeRepository) Create(ctx context.Context, item *entity.Intake) error {
	query := `
		INSERT INTO ` + r.table + ` (` + intakeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.UserID, item.Name, item.Dosage,
		string(item.Frequency.Kind), item.Frequency.Times, item.Frequency.Label,
		item.IsActive, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}

	return nil
}

func (r *intakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Intake, error) {
	query := `SELECT ` + intakeColumns + ` FROM ` + r.table + ` WHERE id = $1`

	item, err := r.scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %s: %w", r.kind, id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}

	return item, nil
}

func (r *intakeRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Intake, error) {
	clause, args := where(filter, "created_at", "is_active")
	query := `SELECT ` + intakeColumns + ` FROM ` + r.table + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %ss: %w", r.kind, err)
	}

	return items, nil
}

func (r *intakeRepository) Update(ctx context.Context, item *entity.Intake) error {
	query := `
		UPDATE ` + r.table + `
		SET name = $1, dosage = $2, frequency_kind = $3, frequency_times = $4, frequency = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`

	result, err := r.pool.Exec(ctx, query,
		item.Name, item.Dosage,
		string(item.Frequency.Kind), item.Frequency.Times, item.Frequency.Label,
		item.IsActive, item.UpdatedAt,
		item.ID, item.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.kind, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", r.kind, item.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *intakeRepository) CreateLog(ctx context.Context, log *entity.IntakeLog) error {
	query := `
		INSERT INTO ` + r.logTable + ` (` + intakeLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, log.ID, log.ItemID, log.UserID, log.TakenAt, log.Notes, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s log: %w", r.kind, err)
	}

	return nil
}

func (r *intakeRepository) ListLogs(ctx context.Context, filter repository.Filter) ([]*entity.IntakeLog, error) {
	clause, args := where(filter, "taken_at", "")
	query := `SELECT ` + intakeLogColumns + ` FROM ` + r.logTable + clause + ` ORDER BY taken_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s logs: %w", r.kind, err)
	}
	defer rows.Close()

	logs := []*entity.IntakeLog{}
	for rows.Next() {
		l := &entity.IntakeLog{Kind: r.kind}
		if err := rows.Scan(&l.ID, &l.ItemID, &l.UserID, &l.TakenAt, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s log: %w", r.kind, err)
		}
		utc(&l.TakenAt)
		utc(&l.CreatedAt)
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s logs: %w", r.kind, err)
	}

	return logs, nil
}

func (r *intakeRepository) scanItem(row pgx.Row) (*entity.Intake, error) {
	item := &entity.Intake{Kind: r.kind}
	var kind string

	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Dosage,
		&kind, &item.Frequency.Times, &item.Frequency.Label,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Frequency.Kind = entity.FrequencyKind(kind)
	utc(&item.CreatedAt)
	utc(&item.UpdatedAt)

	return item, nil
}
