package models

import "github.com/golang-jwt/jwt/v5"

// TeacherClaims is the attribute set carried in tokens issued by the
// external identity provider. The gateway only reads these; it never issues
// or refreshes tokens.
type TeacherClaims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	jwt.RegisteredClaims
}

// TeacherID returns the provider's subject identifier.
func (c *TeacherClaims) TeacherID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
