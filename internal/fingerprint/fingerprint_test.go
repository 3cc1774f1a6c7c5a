package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "f0f0f0f0f0f0f0f0", "f0f0f0f0f0f0f0f0", 0},
		{"one bit apart", "00000000000000ff", "00000000000000fe", 1},
		{"opposite", "ffffffffffffffff", "0000000000000000", 64},
		{"unparseable left", "not-a-hash", "00000000000000ff", 64},
		{"unparseable right", "00000000000000ff", "", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}
