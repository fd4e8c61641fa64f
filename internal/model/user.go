package model

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleInspector Role = "Inspector"
	RoleViewer    Role = "Viewer"
	RoleUser      Role = "User"
)

type User struct {
	// Unique identifier of the user.
	ID int64
	// Name parts as stored by the backend.
	FirstName  string
	LastName   string
	MiddleName string
	Email      string
	// Global role; project-scoped roles live on Membership.
	Role Role
}

// EffectiveRole falls back to Viewer for users without an assigned role.
func (u *User) EffectiveRole() Role {
	if u == nil || u.Role == "" {
		return RoleViewer
	}
	return u.Role
}

// Membership binds a user to a project with a project-scoped role.
// Unique per (UserID, ProjectID).
type Membership struct {
	UserID    int64
	ProjectID int64
	Role      Role
}

type CreateMembershipParams struct {
	UserID    int64
	ProjectID int64
	Role      Role
}

type LoginParams struct {
	Email    string
	Password string
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
