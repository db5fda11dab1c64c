package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaType is the primary presentation mode of a listing.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
	MediaType3D    MediaType = "3d"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaTypePhoto, MediaTypeVideo, MediaType3D:
		return true
	}
	return false
}

// Property is one real-estate listing. Price is kept as the free-form display
// string the admin typed (e.g. "€120,000" or "€2,500/muaj"); numeric filtering
// extracts the leading number at query time. Area is m² except for land
// listings, where the admin enters hectares (no conversion happens anywhere).
type Property struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Price        string    `json:"price"`
	Beds         int       `json:"beds"`
	Baths        int       `json:"baths"`
	Area         float64   `json:"area"`
	PropertyType *string   `json:"propertyType,omitempty"`
	MediaType    MediaType `json:"mediaType"`
	ForRent      bool      `json:"forRent"`
	Image        string    `json:"image"`
	VideoURL     *string   `json:"videoUrl,omitempty"`
	TourID       *string   `json:"tourId,omitempty"`
	Gallery      []string  `json:"gallery,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	Features     []string  `json:"features,omitempty"`
	DisplayOrder *int      `json:"displayOrder,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasCoordinates reports whether both lat and lng are stored on the listing.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
