package dtos

// ListPropertiesQuery holds the optional filter parameters of the public
// listing endpoint, all carried as query-string values. Empty string means
// "filter not supplied".
type ListPropertiesQuery struct {
	Query     string
	Location  string
	Type      string
	MediaType string
	PriceMin  string
	PriceMax  string
	AreaMin   string
	AreaMax   string
	Feature   string
	ForRent   string // "true" / "false" / ""
}

type CreatePropertyRequest struct {
	Title        string   `json:"title" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        string   `json:"price" validate:"required"`
	Beds         int      `json:"beds" validate:"gte=0"`
	Baths        int      `json:"baths" validate:"gte=0"`
	Area         float64  `json:"area" validate:"gte=0"`
	PropertyType *string  `json:"propertyType,omitempty"`
	MediaType    string   `json:"mediaType" validate:"required,oneof=photo video 3d"`
	ForRent      bool     `json:"forRent"`
	Image        string   `json:"image" validate:"required,url"`
	VideoURL     *string  `json:"videoUrl,omitempty" validate:"omitempty,url"`
	TourID       *string  `json:"tourId,omitempty"`
	Gallery      []string `json:"gallery,omitempty" validate:"dive,url"`
	Description  *string  `json:"description,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	ContactEmail *string  `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Features     []string `json:"features,omitempty"`
	DisplayOrder *int     `json:"displayOrder,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// UpdatePropertyRequest is a partial update: nil means "leave unchanged".
// Slices use a present-but-empty distinction via pointers as well.
type UpdatePropertyRequest struct {
	Title        *string   `json:"title,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Price        *string   `json:"price,omitempty"`
	Beds         *int      `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Baths        *int      `json:"baths,omitempty" validate:"omitempty,gte=0"`
	Area         *float64  `json:"area,omitempty" validate:"omitempty,gte=0"`
	PropertyType *string   `json:"propertyType,omitempty"`
	MediaType    *string   `json:"mediaType,omitempty" validate:"omitempty,oneof=photo video 3d"`
	ForRent      *bool     `json:"forRent,omitempty"`
	Image        *string   `json:"image,omitempty" validate:"omitempty,url"`
	VideoURL     *string   `json:"videoUrl,omitempty"`
	TourID       *string   `json:"tourId,omitempty"`
	Gallery      *[]string `json:"gallery,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Features     *[]string `json:"features,omitempty"`
	DisplayOrder *int      `json:"displayOrder,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64  `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// MapMarker is one plottable property with resolved coordinates plus the
// fields the popup renders.
type MapMarker struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Price     string  `json:"price"`
	Beds      int     `json:"beds"`
	Baths     int     `json:"baths"`
	Area      float64 `json:"area"`
	Image     string  `json:"image"`
	DetailURL string  `json:"detailUrl"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapBounds is the bounding box of all markers; the client fits its viewport
// to it with fixed padding.
type MapBounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

type MapMarkersResponse struct {
	Markers []MapMarker `json:"markers"`
	Bounds  *MapBounds  `json:"bounds,omitempty"`
}
