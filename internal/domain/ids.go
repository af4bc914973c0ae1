package domain

// SubjectID is the authenticated subject extracted from JWT claims (typically "sub").
// We model it as an opaque identifier: its format is controlled by the IdP.
type SubjectID string

// Numeric identifiers assigned by the backend (or by a fallback store when the backend is down).
type (
	ClubID        int64
	MembershipID  int64
	UserID        int64
	AdminID       int64
	BoardMemberID int64
	CommitteeID   int64
)
