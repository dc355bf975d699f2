package entity

import (
	"time"

	"github.com/google/uuid"
)

// IntakeKind distinguishes the two kinds of scheduled intake items
type IntakeKind string

const (
	IntakeKindMedication IntakeKind = "medication"
	IntakeKindSupplement IntakeKind = "supplement"
)

// Intake is a medication or supplement a user takes on a schedule
type Intake struct {
	ID     uuid.UUID  `json:"id"`
	UserID string     `json:"user_id"`
	Kind   IntakeKind `json:"kind"`

	Name      string    `json:"name"`
	Dosage    *string   `json:"dosage,omitempty"`
	Frequency Frequency `json:"frequency"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IntakeLog records one dose of an intake item
type IntakeLog struct {
	ID     uuid.UUID  `json:"id"`
	ItemID uuid.UUID  `json:"item_id"`
	UserID string     `json:"user_id"`
	Kind   IntakeKind `json:"kind"`

	TakenAt   time.Time `json:"taken_at"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
