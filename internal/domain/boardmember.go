package domain

// BoardMember is a club board position holder for a season.
type BoardMember struct {
	ID        BoardMemberID
	Email     string
	Password  string
	FirstName string
	LastName  string
	Position  string
	// JoinDate is formatted with DateLayout.
	JoinDate string
	Season   string
	ClubID   ClubID
	IsActive bool
}

func (b BoardMember) FullName() string {
	return NormalizeHumanName(b.FirstName + " " + b.LastName)
}
