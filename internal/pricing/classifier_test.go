package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	band := PriceBand{Q25: 1.75, Q50: 2.5, Q75: 3.25}
	const premium = 0.07

	tests := []struct {
		name     string
		median   float64
		expected Zone
	}{
		{"well below buy bound", 1.5, ZoneBuy},
		{"just below buy bound", 1.75*0.93 - 1e-9, ZoneBuy},
		{"exactly on buy bound is neutral", 1.75 * 0.93, ZoneNeutral},
		{"inside band", 2.5, ZoneNeutral},
		{"exactly on sell bound is neutral", 3.25 * 1.07, ZoneNeutral},
		{"just above sell bound", 3.25*1.07 + 1e-9, ZoneSell},
		{"well above sell bound", 5.0, ZoneSell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.median, band, premium))
		})
	}
}

func TestClassifyZeroPremium(t *testing.T) {
	band := PriceBand{Q25: 2, Q50: 3, Q75: 4}
	assert.Equal(t, ZoneNeutral, Classify(2, band, 0))
	assert.Equal(t, ZoneBuy, Classify(1.999, band, 0))
	assert.Equal(t, ZoneNeutral, Classify(4, band, 0))
	assert.Equal(t, ZoneSell, Classify(4.001, band, 0))
}
