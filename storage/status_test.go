package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_History(t *testing.T) {
	s := &Status{Keys: 2, Versions: 8}
	assert.Equal(t, uint64(6), s.HistoryVersions())
	assert.InDelta(t, 75.0, s.HistoryPercent(), 0.0001)

	empty := &Status{}
	assert.Equal(t, 0.0, empty.HistoryPercent())
}
