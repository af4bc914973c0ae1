package domain

// Committee is a working group inside a club, optionally led by a board member.
type Committee struct {
	ID          CommitteeID
	Name        string
	Description string
	ClubID      ClubID
	// HeadID is zero when no head is assigned.
	HeadID BoardMemberID
}
