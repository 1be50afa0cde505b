package credentials

import (
	"fmt"

	"github.com/apicombat/go-starter-client/lib/random"
)

const (
	tagAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tagLength   = 6
)

// Credentials holds a generated account's identity
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Generate derives a fresh set of account credentials from a random tag.
// The username, email and password are all deterministic functions of the
// tag, so a run's credentials can be reconstructed from its username.
func Generate(r random.Random) Credentials {
	tag := r.String(tagLength, tagAlphabet)
	username := fmt.Sprintf("py-%s", tag)
	return Credentials{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: fmt.Sprintf("PyStarter1!%s", tag),
	}
}
