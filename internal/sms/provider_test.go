package sms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOTimestamp(t *testing.T) {
	assert.Nil(t, ISOTimestamp(nil))

	loc := time.FixedZone("PDT", -7*3600)
	ts := time.Date(2024, 3, 9, 13, 4, 5, 0, loc)
	got := ISOTimestamp(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-09T20:04:05.000Z", *got)
}
