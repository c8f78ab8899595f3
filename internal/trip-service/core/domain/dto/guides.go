package dto

import "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"

// GuideDraft is the admin payload for adding a guide to the registry.
type GuideDraft struct {
	UserId      string   `json:"userId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Location    string   `json:"location"`
	Languages   []string `json:"languages" validate:"required,min=1"`
	Specialties []string `json:"specialties" validate:"required,min=1"`
	Bio         string   `json:"bio"`
}

// GuidePatch carries partial registry updates; nil fields stay untouched.
type GuidePatch struct {
	Available   *bool     `json:"available"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	Languages   *[]string `json:"languages"`
	Specialties *[]string `json:"specialties"`
	Bio         *string   `json:"bio"`
}

type GuideResponseDto struct {
	ID             string   `json:"id"`
	UserId         string   `json:"userId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Languages      []string `json:"languages"`
	Specialties    []string `json:"specialties"`
	Available      bool     `json:"available"`
	Rating         float64  `json:"rating"`
	CompletedTrips int      `json:"completedTrips"`
	Bio            string   `json:"bio,omitempty"`
}

func NewGuideResponse(m model.Guide) GuideResponseDto {
	return GuideResponseDto{
		ID:             m.ID,
		UserId:         m.UserId,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Location:       m.Location,
		Languages:      m.Languages,
		Specialties:    m.Specialties,
		Available:      m.Available,
		Rating:         m.Rating,
		CompletedTrips: m.CompletedTrips,
		Bio:            m.Bio,
	}
}

func NewGuideResponseList(ms []model.Guide) []GuideResponseDto {
	res := make([]GuideResponseDto, 0, len(ms))
	for _, m := range ms {
		res = append(res, NewGuideResponse(m))
	}
	return res
}
