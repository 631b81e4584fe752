package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.123456, "0.1235"},
		{-0.5, "-0.5000"},
		{0, "0.0000"},
		{12.3456, "12.35"},
		{1, "1.00"},
		{1000, "1000.00"},
		{1234.56, "1235"},
		{-2500.4, "-2500"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Strip(tc.value), "value %v", tc.value)
	}

	assert.Equal(t, "0.12", StripPrecision(0.123456, 2))
}
