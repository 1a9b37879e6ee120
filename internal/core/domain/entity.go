package domain

import (
	"time"

	"github.com/promobeats/backoffice/internal/core/specification"
)

// Fields every entity carries.
const (
	FieldID        specification.Field = "_id"
	FieldCreatedAt specification.Field = "created_at"
	FieldUpdatedAt specification.Field = "updated_at"
)

// Entity is the contract every persistent domain type fulfils so the generic
// repository can read and assign identity and audit timestamps without knowing
// the concrete type.
type Entity[ID comparable] interface {
	GetID() ID
	SetID(ID)
	TouchCreated(at time.Time)
	TouchUpdated(at time.Time)
}

// Timestamps carries the storage-assigned audit fields shared by all entities.
// Embed it and the Entity touch methods come for free.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (t *Timestamps) TouchCreated(at time.Time) {
	t.CreatedAt = at
	t.UpdatedAt = at
}

func (t *Timestamps) TouchUpdated(at time.Time) {
	t.UpdatedAt = at
}
