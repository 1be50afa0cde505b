package credentials

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apicombat/go-starter-client/lib/random"
)

// fixedRandom always yields the same tag, so derivations can be asserted
type fixedRandom struct {
	tag string
}

func (r *fixedRandom) Intn(n int) int { return 0 }

func (r *fixedRandom) String(length int, alphabet string) string { return r.tag }

func TestGenerate_UsernamePattern(t *testing.T) {
	pattern := regexp.MustCompile(`^py-[a-z0-9]{6}$`)

	r := random.New()
	for i := 0; i < 50; i++ {
		creds := Generate(r)
		assert.Regexp(t, pattern, creds.Username)
	}
}

func TestGenerate_DerivedFromTag(t *testing.T) {
	creds := Generate(&fixedRandom{tag: "abc123"})

	assert.Equal(t, "py-abc123", creds.Username)
	assert.Equal(t, "py-abc123@example.com", creds.Email)
	assert.Equal(t, "PyStarter1!abc123", creds.Password)
}

func TestGenerate_UniqueAcrossRuns(t *testing.T) {
	r := random.New()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		creds := Generate(r)
		seen[creds.Username] = true
	}
	// 36^6 tags make collisions across 20 draws vanishingly unlikely
	assert.Greater(t, len(seen), 1)
}
