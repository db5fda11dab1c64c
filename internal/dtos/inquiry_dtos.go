package dtos

// ContactRequest is the generic contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// InquiryRequest is a property-specific inquiry; the property reference is
// taken from the URL, not the body.
type InquiryRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Interest string `json:"interest,omitempty"`
	Message  string `json:"message" validate:"required"`
}

type NotifyResponse struct {
	Success bool `json:"success"`
}
