package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:45", FormatDuration(45))
	assert.Equal(t, "27:30", FormatDuration(1650))
	assert.Equal(t, "59:59", FormatDuration(3599))
	assert.Equal(t, "1:00:00", FormatDuration(3600))
	assert.Equal(t, "1:52:33", FormatDuration(6753))
}

func TestFormatPace(t *testing.T) {
	// 1650s over 5km is 5:30 per km.
	assert.Equal(t, "5:30", FormatPace(1650, 5))
	assert.Equal(t, "4:00", FormatPace(2400, 10))
	assert.Equal(t, "0:00", FormatPace(0, 5))
	assert.Equal(t, "0:00", FormatPace(1650, 0))
}
