package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBack(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	_, offset := time.Now().In(loc).Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestLocationUsesValidZone(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
}
