package adminsource

import "github.com/nu-student-clubs/clubs-admin/internal/domain"

// ApplyTo applies the specified fields of r to a.
// Null on a non-nullable field is treated as "leave unchanged"; callers validate first.
func (r UpdateAdminRequest) ApplyTo(a *domain.Admin) {
	if r.Email.HasValue() {
		a.Email = r.Email.Value()
	}
	if r.Password.HasValue() {
		a.Password = r.Password.Value()
	}
	if r.FirstName.HasValue() {
		a.FirstName = r.FirstName.Value()
	}
	if r.LastName.HasValue() {
		a.LastName = r.LastName.Value()
	}
	a.Phone = patchStringPtr(a.Phone, r.Phone)
	a.ProfilePicture = patchStringPtr(a.ProfilePicture, r.ProfilePicture)
	a.Department = patchStringPtr(a.Department, r.Department)
	a.AdminLevel = patchStringPtr(a.AdminLevel, r.AdminLevel)
	if r.Active.HasValue() {
		a.Active = r.Active.Value()
	}
	if r.Permissions.IsSpecified() {
		a.ApplyPermissions(r.Permissions.Value())
	}
}

func patchStringPtr(cur *string, o domain.Optional[string]) *string {
	switch {
	case !o.IsSpecified():
		return cur
	case o.IsNull():
		return nil
	default:
		v := o.Value()
		return &v
	}
}
