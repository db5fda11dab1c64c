package dtos

type CreateFeatureRequest struct {
	Name string `json:"name" validate:"required"`
}
