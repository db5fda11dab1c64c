package routes

const (
	// Health / metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Public catalog
	Properties    = "/api/v1/properties"
	PropertyByID  = "/api/v1/properties/{id}"
	PropertiesMap = "/api/v1/properties/map"
	Features      = "/api/v1/features"

	// Contact / inquiry relay
	Contact         = "/api/v1/contact"
	PropertyInquiry = "/api/v1/properties/{id}/inquiry"

	// Auth
	AuthLogin = "/api/v1/auth/login"

	// Admin console (JWT + allowlist)
	AdminProperties   = "/api/v1/admin/properties"
	AdminPropertyByID = "/api/v1/admin/properties/{id}"
	AdminFeatures     = "/api/v1/admin/features"
	AdminFeatureByID  = "/api/v1/admin/features/{id}"
	AdminUploads      = "/api/v1/admin/uploads"

	// Uploaded media (static)
	MediaPrefix = "/media/"
)
