package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movies-api/internal/shared/utils"
)

const (
	MinBirthYear  = 1888
	MaxBirthYear  = 2030
	MaxRoleLength = 255
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateActorRequest struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	BirthYear *int    `json:"birth_year"`
	ImageURL  *string `json:"image_url"`
}

func (r *CreateActorRequest) Normalize() {
	utils.TrimPtr(&r.Name)
}

func (r CreateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.BirthYear, validation.Min(MinBirthYear), validation.Max(MaxBirthYear)),
		validation.Field(&r.ImageURL, validation.RuneLength(0, 500)),
	)
}

func (r CreateActorRequest) NewActor() NewActor {
	return NewActor{Name: r.Name, Bio: r.Bio, BirthYear: r.BirthYear, ImageURL: r.ImageURL}
}

type UpdateActorRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	BirthYear *int    `json:"birth_year"`
	ImageURL  *string `json:"image_url"`
}

func (r *UpdateActorRequest) Normalize() {
	utils.TrimPtr(r.Name)
}

func (r UpdateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
		validation.Field(&r.BirthYear, validation.Min(MinBirthYear), validation.Max(MaxBirthYear)),
		validation.Field(&r.ImageURL, validation.RuneLength(0, 500)),
	)
}

func (r UpdateActorRequest) Changes() Changes {
	return Changes{Name: r.Name, Bio: r.Bio, BirthYear: r.BirthYear, ImageURL: r.ImageURL}
}

// ValidateRole checks the optional role given when adding an actor to a movie.
func ValidateRole(role *string) error {
	if err := validation.Validate(role, validation.RuneLength(1, MaxRoleLength)); err != nil {
		return validation.Errors{"role": err}
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ListActorsResponse struct {
	Actors []Actor `json:"actors"`
	Count  int     `json:"count"`
}
