package dto

import "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"

type DestinationResponseDto struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
}

func NewDestinationResponseList(ms []model.Destination) []DestinationResponseDto {
	res := make([]DestinationResponseDto, 0, len(ms))
	for _, m := range ms {
		res = append(res, DestinationResponseDto(m))
	}
	return res
}
