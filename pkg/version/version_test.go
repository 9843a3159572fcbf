package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetCommit())
	assert.NotEmpty(t, GetBuildDate())
}

func TestFull(t *testing.T) {
	orig := [3]string{version, commit, buildDate}
	t.Cleanup(func() { version, commit, buildDate = orig[0], orig[1], orig[2] })

	version, commit, buildDate = "1.2.3", "abc123", "2026-01-02"
	assert.Equal(t, "1.2.3 (commit abc123, built 2026-01-02)", Full())
}
