package clubstore

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// Seed returns the demo clubs used as fallback data.
func Seed() []domain.Club {
	return []domain.Club{
		{
			ID:          1,
			Name:        "Tech Club",
			Description: "A club for technology enthusiasts interested in programming, web development, and AI.",
			President:   "Ahmed Hassan",
			Email:       "tech@nu.edu.eg",
			Category:    "Technology",
			CreatedAt:   "2024-01-15",
			UpdatedAt:   "2024-12-19",
		},
		{
			ID:          2,
			Name:        "Arts & Culture",
			Description: "Celebrate diverse cultures through art, music, and traditional performances.",
			President:   "Layla Mohamed",
			Email:       "arts@nu.edu.eg",
			Category:    "Arts",
			CreatedAt:   "2024-02-10",
			UpdatedAt:   "2024-12-19",
		},
		{
			ID:          3,
			Name:        "Sports League",
			Description: "Join us for various sports activities, competitions, and team building events.",
			President:   "Omar Khalil",
			Email:       "sports@nu.edu.eg",
			Category:    "Sports",
			CreatedAt:   "2024-01-20",
			UpdatedAt:   "2024-12-19",
		},
		{
			ID:          4,
			Name:        "Debate Society",
			Description: "Develop public speaking and critical thinking skills through engaging debates.",
			President:   "Nour Saad",
			Email:       "debate@nu.edu.eg",
			Category:    "Academic",
			CreatedAt:   "2024-03-05",
			UpdatedAt:   "2024-12-19",
		},
		{
			ID:          5,
			Name:        "Environmental Club",
			Description: "Work towards sustainability and environmental conservation through projects and awareness.",
			President:   "Sara Ahmed",
			Email:       "environment@nu.edu.eg",
			Category:    "Environmental",
			CreatedAt:   "2024-02-28",
			UpdatedAt:   "2024-12-19",
		},
		{
			ID:          6,
			Name:        "Business Club",
			Description: "Network, learn business skills, and explore entrepreneurship opportunities.",
			President:   "Karim Ali",
			Email:       "business@nu.edu.eg",
			Category:    "Business",
			CreatedAt:   "2024-01-10",
			UpdatedAt:   "2024-12-19",
		},
	}
}
