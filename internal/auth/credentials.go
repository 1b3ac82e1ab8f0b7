package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"soulforge/internal/models"
)

// Credential maps a username to a secret and the role granted on a
// successful login. Secret is compared verbatim unless it carries a bcrypt
// prefix, in which case it is verified as a hash. Config may override the
// built-in secrets with hashed values.
type Credential struct {
	Username string
	Secret   string
	Role     models.UserRole
}

// Credentials is the login table keyed by username.
type Credentials map[string]Credential

// DefaultCredentials returns the built-in login table: the site owner and a
// read-mostly showcase account.
func DefaultCredentials() Credentials {
	return Credentials{
		"Sage":     {Username: "Sage", Secret: "Sagereturns", Role: models.RoleAdmin},
		"Showcase": {Username: "Showcase", Secret: "TheSage", Role: models.RoleShowoff},
	}
}

// Override replaces the secret for username if it exists in the table.
// Used to swap built-in passwords for bcrypt hashes from config.
func (c Credentials) Override(username, secret string) {
	if secret == "" {
		return
	}
	if cred, ok := c[username]; ok {
		cred.Secret = secret
		c[username] = cred
	}
}

// Verify checks a username/password pair against the table. It returns the
// authenticated user, or nil and false on any mismatch. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (c Credentials) Verify(username, password string) (*models.User, bool) {
	cred, ok := c[username]
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(cred.Secret, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(cred.Secret), []byte(password)) != nil {
			return nil, false
		}
	} else if cred.Secret != password {
		return nil, false
	}
	return &models.User{Username: cred.Username, Role: cred.Role}, true
}
