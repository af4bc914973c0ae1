package membershipstore

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// Seed returns the demo memberships used as fallback data.
func Seed() []domain.Membership {
	return []domain.Membership{
		{ID: 1, UserID: 1, ClubID: 1, JoinedAt: "2024-09-15T10:30:00"},
		{ID: 2, UserID: 1, ClubID: 3, JoinedAt: "2024-10-20T14:45:00"},
		{ID: 3, UserID: 1, ClubID: 5, JoinedAt: "2024-11-05T09:15:00"},
	}
}
