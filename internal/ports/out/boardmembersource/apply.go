package boardmembersource

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// ApplyTo applies the specified, non-null fields of r to b.
func (r UpdateBoardMemberRequest) ApplyTo(b *domain.BoardMember) {
	setString(&b.Email, r.Email)
	setString(&b.Password, r.Password)
	setString(&b.FirstName, r.FirstName)
	setString(&b.LastName, r.LastName)
	setString(&b.Position, r.Position)
	setString(&b.JoinDate, r.JoinDate)
	setString(&b.Season, r.Season)
	if r.ClubID.HasValue() {
		b.ClubID = r.ClubID.Value()
	}
	if r.IsActive.HasValue() {
		b.IsActive = r.IsActive.Value()
	}
}

func setString(dst *string, o domain.Optional[string]) {
	if o.HasValue() {
		*dst = o.Value()
	}
}
