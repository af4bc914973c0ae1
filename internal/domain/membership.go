package domain

// Membership is a user's application to (or membership of) a club.
// No referential integrity is implied: UserID and ClubID may reference records that do not exist.
type Membership struct {
	ID       MembershipID
	UserID   UserID
	ClubID   ClubID
	JoinedAt string
}
