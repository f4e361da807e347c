package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullCarriesReleaseAndCommit(t *testing.T) {
	full := Full()
	assert.True(t, strings.HasPrefix(full, "fleetd "), full)
	assert.Contains(t, full, Release)
	assert.Contains(t, full, Commit)
}

func TestShortenCapsRevisionLength(t *testing.T) {
	assert.Equal(t, "abc", shorten("abc"))
	assert.Equal(t, "0123456789ab", shorten("0123456789abcdef0123"))
}
