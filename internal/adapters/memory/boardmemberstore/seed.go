package boardmemberstore

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// Seed returns the demo board members used as fallback data.
func Seed() []domain.BoardMember {
	return []domain.BoardMember{
		{
			ID:        1,
			Email:     "hana.mostafa@nu.edu.eg",
			Password:  "changeme",
			FirstName: "Hana",
			LastName:  "Mostafa",
			Position:  "President",
			JoinDate:  "2024-09-01",
			Season:    "2024-2025",
			ClubID:    1,
			IsActive:  true,
		},
		{
			ID:        2,
			Email:     "ali.tarek@nu.edu.eg",
			Password:  "changeme",
			FirstName: "Ali",
			LastName:  "Tarek",
			Position:  "Vice President",
			JoinDate:  "2024-09-01",
			Season:    "2024-2025",
			ClubID:    1,
			IsActive:  true,
		},
		{
			ID:        3,
			Email:     "salma.ibrahim@nu.edu.eg",
			Password:  "changeme",
			FirstName: "Salma",
			LastName:  "Ibrahim",
			Position:  "Treasurer",
			JoinDate:  "2023-09-01",
			Season:    "2023-2024",
			ClubID:    3,
			IsActive:  false,
		},
	}
}
