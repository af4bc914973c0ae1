package domain

// Admin permission names accepted in create/update requests.
const (
	PermissionManageAdmins       = "MANAGE_ADMINS"
	PermissionManageApplications = "MANAGE_APPLICATIONS"
	PermissionManageClubs        = "MANAGE_CLUBS"
)

// RoleAdmin is granted to every admin account.
const RoleAdmin = "ADMIN"

// Admin is a platform administrator account.
type Admin struct {
	ID        AdminID
	Email     string
	Password  string
	FirstName string
	LastName  string

	Phone          *string
	ProfilePicture *string
	Department     *string
	AdminLevel     *string

	Active bool

	CanManageAdmins       bool
	CanManageApplications bool
	CanManageClubs        bool
	Roles                 []string

	// CreatedAt and UpdatedAt are epoch milliseconds.
	CreatedAt int64
	UpdatedAt int64
}

func (a Admin) FullName() string {
	return NormalizeHumanName(a.FirstName + " " + a.LastName)
}

// Permissions returns the permission names implied by the admin's flags.
func (a Admin) Permissions() []string {
	out := make([]string, 0, 3)
	if a.CanManageAdmins {
		out = append(out, PermissionManageAdmins)
	}
	if a.CanManageApplications {
		out = append(out, PermissionManageApplications)
	}
	if a.CanManageClubs {
		out = append(out, PermissionManageClubs)
	}
	return out
}

// ApplyPermissions sets the admin's flags from permission names. Unknown names are ignored.
func (a *Admin) ApplyPermissions(perms []string) {
	a.CanManageAdmins = false
	a.CanManageApplications = false
	a.CanManageClubs = false
	for _, p := range perms {
		switch p {
		case PermissionManageAdmins:
			a.CanManageAdmins = true
		case PermissionManageApplications:
			a.CanManageApplications = true
		case PermissionManageClubs:
			a.CanManageClubs = true
		}
	}
}

// IsKnownPermission reports whether p is one of the permission constants.
func IsKnownPermission(p string) bool {
	switch p {
	case PermissionManageAdmins, PermissionManageApplications, PermissionManageClubs:
		return true
	default:
		return false
	}
}
