package committeestore

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// Seed returns the demo committees used as fallback data.
func Seed() []domain.Committee {
	return []domain.Committee{
		{
			ID:          1,
			Name:        "Web Development",
			Description: "Builds and maintains the club website and internal tools.",
			ClubID:      1,
			HeadID:      2,
		},
		{
			ID:          2,
			Name:        "Events",
			Description: "Plans tournaments, sports days and team building trips.",
			ClubID:      3,
			HeadID:      3,
		},
	}
}
