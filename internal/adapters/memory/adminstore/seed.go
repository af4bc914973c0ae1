package adminstore

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// Seed returns the demo admin accounts used as fallback data.
func Seed() []domain.Admin {
	return []domain.Admin{
		{
			ID:                    1,
			Email:                 "admin@nu.edu.eg",
			Password:              "changeme",
			FirstName:             "Mona",
			LastName:              "Farouk",
			Department:            strPtr("Student Affairs"),
			AdminLevel:            strPtr("SUPER"),
			Active:                true,
			CanManageAdmins:       true,
			CanManageApplications: true,
			CanManageClubs:        true,
			Roles:                 []string{domain.RoleAdmin},
			CreatedAt:             1704412800000, // 2024-01-05
			UpdatedAt:             1734566400000, // 2024-12-19
		},
		{
			ID:                    2,
			Email:                 "activities@nu.edu.eg",
			Password:              "changeme",
			FirstName:             "Youssef",
			LastName:              "Adel",
			Department:            strPtr("Student Activities"),
			AdminLevel:            strPtr("STANDARD"),
			Active:                true,
			CanManageApplications: true,
			CanManageClubs:        true,
			Roles:                 []string{domain.RoleAdmin},
			CreatedAt:             1709251200000, // 2024-03-01
			UpdatedAt:             1734566400000,
		},
	}
}

func strPtr(s string) *string { return &s }
