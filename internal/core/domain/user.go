package domain

// UserRole controls access to destructive routes.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is an API user account. PasswordHash is a bcrypt hash and never leaves
// the service layer.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedAt    string   `json:"createdAt"`
}
