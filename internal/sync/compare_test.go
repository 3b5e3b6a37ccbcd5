package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stamped string

func (s stamped) Timestamp() string { return string(s) }

func TestResolve(t *testing.T) {
	older := stamped("2026-08-01T00:00:00.000Z")
	newer := stamped("2026-08-02T00:00:00.000Z")

	assert.Equal(t, outcomePull, resolve(false, false, stamped(""), newer),
		"no local copy always pulls")

	assert.Equal(t, outcomePull, resolve(true, false, older, newer),
		"synced local, newer remote: remote wins")

	assert.Equal(t, outcomeSkip, resolve(true, false, newer, older),
		"synced local newer than remote: local wins (nothing to do)")

	assert.Equal(t, outcomeSkip, resolve(true, true, newer, older),
		"local pending and strictly newer than remote: local edit wins")

	assert.Equal(t, outcomeSkip, resolve(true, true, older, newer),
		"local pending, remote moved on: local edit still wins, never overwritten")

	assert.Equal(t, outcomeSkip, resolve(true, true, older, older),
		"local pending with an equal remote timestamp: still skipped, not silently overwritten")
}
