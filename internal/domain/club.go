package domain

// Club is a student club as exposed by the clubs API.
// Timestamps are kept as the strings the backend returns.
type Club struct {
	ID          ClubID
	Name        string
	Description string
	President   string
	Email       string
	Category    string
	CreatedAt   string
	UpdatedAt   string
}
