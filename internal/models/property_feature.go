package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyFeature is one entry of the feature-tag reference list that feeds
// the admin tag picker. Property.Features stores free strings, not references
// into this table.
type PropertyFeature struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
