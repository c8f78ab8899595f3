package dto

import (
	"time"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
)

// RequestDraft is the submission payload of POST /api/requests.
type RequestDraft struct {
	SelectedDestinations []int64  `json:"selectedDestinations" validate:"required,min=1"`
	TourType             string   `json:"tourType" validate:"required"`
	PreferredLanguage    string   `json:"preferredLanguage" validate:"required"`
	SpecialInterests     []string `json:"specialInterests"`
	Duration             string   `json:"duration"`
	GroupSize            string   `json:"groupSize"`
	Budget               string   `json:"budget"`
	FitnessLevel         string   `json:"fitnessLevel"`
	StartDate            string   `json:"startDate" validate:"required"`
	EmergencyContact     string   `json:"emergencyContact" validate:"required"`
}

type AssignRequestDto struct {
	GuideId string `json:"guideId" validate:"required"`
}

type StatusUpdateDto struct {
	Status string `json:"status" validate:"required"`
}

type RequestResponseDto struct {
	ID                   string   `json:"id"`
	TouristId            string   `json:"touristId"`
	TouristName          string   `json:"touristName"`
	TouristEmail         string   `json:"touristEmail"`
	SelectedDestinations []int64  `json:"selectedDestinations"`
	TourType             string   `json:"tourType"`
	PreferredLanguage    string   `json:"preferredLanguage"`
	SpecialInterests     []string `json:"specialInterests"`
	Duration             string   `json:"duration"`
	GroupSize            string   `json:"groupSize"`
	Budget               string   `json:"budget"`
	FitnessLevel         string   `json:"fitnessLevel"`
	StartDate            string   `json:"startDate"`
	EmergencyContact     string   `json:"emergencyContact"`
	Status               string   `json:"status"`
	AssignedGuide        string   `json:"assignedGuide,omitempty"`
	SubmittedAt          string   `json:"submittedAt"`
	AssignedAt           string   `json:"assignedAt,omitempty"`
}

func NewRequestResponse(m model.GuideRequest) RequestResponseDto {
	res := RequestResponseDto{
		ID:                   m.ID,
		TouristId:            m.TouristID,
		TouristName:          m.TouristName,
		TouristEmail:         m.TouristEmail,
		SelectedDestinations: m.SelectedDestinations,
		TourType:             m.TourType,
		PreferredLanguage:    m.PreferredLanguage,
		SpecialInterests:     m.SpecialInterests,
		Duration:             m.Duration,
		GroupSize:            m.GroupSize,
		Budget:               m.Budget,
		FitnessLevel:         m.FitnessLevel,
		StartDate:            m.StartDate.Format("2006-01-02"),
		EmergencyContact:     m.EmergencyContact,
		Status:               string(m.Status),
		AssignedGuide:        m.AssignedGuide,
		SubmittedAt:          m.SubmittedAt.Format(time.RFC3339),
	}
	if !m.AssignedAt.IsZero() {
		res.AssignedAt = m.AssignedAt.Format(time.RFC3339)
	}
	return res
}

func NewRequestResponseList(ms []model.GuideRequest) []RequestResponseDto {
	res := make([]RequestResponseDto, 0, len(ms))
	for _, m := range ms {
		res = append(res, NewRequestResponse(m))
	}
	return res
}
