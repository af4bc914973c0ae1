package committeesource

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// ApplyTo applies the specified fields of r to c. A null HeadID clears the head.
func (r UpdateCommitteeRequest) ApplyTo(c *domain.Committee) {
	if r.Name.HasValue() {
		c.Name = r.Name.Value()
	}
	if r.Description.IsSpecified() {
		c.Description = r.Description.Value()
	}
	if r.ClubID.HasValue() {
		c.ClubID = r.ClubID.Value()
	}
	if r.HeadID.IsSpecified() {
		c.HeadID = r.HeadID.Value()
	}
}
