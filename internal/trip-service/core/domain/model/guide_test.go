package model

import "testing"

func TestMatchesRequest(t *testing.T) {
	req := GuideRequest{
		TourType:          "trekking",
		PreferredLanguage: "Nepali",
		SpecialInterests:  []string{"Mountain Photography", "local food"},
	}

	cases := []struct {
		name  string
		guide Guide
		want  bool
	}{
		{
			name:  "language match",
			guide: Guide{Languages: []string{"English", "Nepali"}},
			want:  true,
		},
		{
			name:  "specialty matches tour type",
			guide: Guide{Languages: []string{"German"}, Specialties: []string{"Trekking"}},
			want:  true,
		},
		{
			name:  "specialty substring of tour type",
			guide: Guide{Specialties: []string{"trek"}},
			want:  true,
		},
		{
			name:  "specialty matches special interest",
			guide: Guide{Specialties: []string{"photography"}},
			want:  true,
		},
		{
			name:  "case insensitive specialty",
			guide: Guide{Specialties: []string{"FOOD"}},
			want:  true,
		},
		{
			name:  "no overlap",
			guide: Guide{Languages: []string{"French"}, Specialties: []string{"rafting"}},
			want:  false,
		},
		{
			name:  "language is exact, not substring",
			guide: Guide{Languages: []string{"Nepali Bhasa"}},
			want:  false,
		},
		{
			name:  "empty guide",
			guide: Guide{},
			want:  false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.guide.MatchesRequest(req); got != c.want {
				t.Errorf("MatchesRequest = %v, want %v", got, c.want)
			}
		})
	}
}
