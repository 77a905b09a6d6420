package domain

// Role is the backend-assigned account role. The client never grants or
// checks permissions itself; the role only drives which screens make sense.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Known() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Older backend revisions keyed the id and role differently.
	LegacyID   string `json:"_id,omitempty"`
	LegacyRole Role   `json:"userType,omitempty"`
}

// Normalize folds legacy field spellings into the canonical ones.
func (u *User) Normalize() {
	if u.ID == "" {
		u.ID = u.LegacyID
	}
	if u.Role == "" {
		u.Role = u.LegacyRole
	}
}

func (u User) String() string {
	return u.Name + " <" + u.Email + "> (" + string(u.Role) + ")"
}

// AuthResult is what a successful login or registration yields. Token may be
// empty on registration when the backend defers the session to a login.
type AuthResult struct {
	Token   string
	User    User
	Message string
}
