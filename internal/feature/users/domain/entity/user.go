// Package entity defines the domain entities for the users feature.
package entity

// User represents a registered storefront user.
// It is persisted as one element of the users document; insertion order
// matches id order.
type User struct {
	// ID is the unique identifier for the user, assigned at signup.
	ID int `json:"id"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords and never leave the
	// persistence layer; transport DTOs omit it.
	Password string `json:"password"`
}
