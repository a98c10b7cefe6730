package models

// User is a registered account. Accounts are only needed for the auth
// endpoints; plan generation and vendor browsing work without one.
type User struct {
	// ID is the store-assigned identifier (UUID format).
	ID string `json:"id"`

	// Email is the login email (unique).
	Email string `json:"email"`

	// DisplayName is the name shown in the UI.
	DisplayName string `json:"display_name,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}
