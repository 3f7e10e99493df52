package entities

// UserRole distinguishes administrators (who may manage other users) from
// regular inspectors.

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// User is the authentication principal persisted through the same tabular
// record store as complaints. Username is unique case-insensitively.
type User struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	DisplayName  string   `json:"display_name"`
	Role         UserRole `json:"role"`
}
