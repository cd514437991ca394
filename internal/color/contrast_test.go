package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{"black", Black, 0.0},
		{"white", White, 1.0},
		{"mid gray", RGB{128, 128, 128}, 0.2159},
		{"pure red", RGB{255, 0, 0}, 0.2126},
		{"pure green", RGB{0, 255, 0}, 0.7152},
		{"pure blue", RGB{0, 0, 255}, 0.0722},
		{"below linear cutoff", RGB{10, 10, 10}, 0.003035},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Luminance(tt.rgb), 0.0005)
		})
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		a, b       RGB
		size       TextSize
		wantRatio  float64
		delta      float64
		accessible bool
	}{
		{"black on white", Black, White, Normal, 21.0, 1e-9, true},
		{"white on white", White, White, Normal, 1.0, 1e-9, false},
		{"black on black", Black, Black, Large, 1.0, 1e-9, false},
		{"gray on white normal", RGB{128, 128, 128}, White, Normal, 3.95, 0.01, false},
		{"gray on white large", RGB{128, 128, 128}, White, Large, 3.95, 0.01, true},
		{"black on gray", Black, RGB{128, 128, 128}, Normal, 5.32, 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.a, tt.b, tt.size)
			assert.InDelta(t, tt.wantRatio, got.Ratio, tt.delta)
			assert.Equal(t, tt.accessible, got.IsAccessible)
		})
	}
}

func TestCalculate_Symmetric(t *testing.T) {
	colors := []RGB{Black, White, {128, 128, 128}, {255, 0, 0}, {12, 200, 99}, {1, 2, 3}, {250, 240, 10}}
	for _, a := range colors {
		for _, b := range colors {
			for _, size := range []TextSize{Large, Normal} {
				assert.Equal(t, Calculate(a, b, size), Calculate(b, a, size))
			}
		}
	}
}

func TestCalculate_RatioBounds(t *testing.T) {
	for v := 0; v <= 255; v += 3 {
		c := RGB{uint8(v), uint8(255 - v), uint8(v / 3)}
		for _, other := range []RGB{Black, White, c} {
			r := ContrastRatio(c, other)
			assert.GreaterOrEqual(t, r, 1.0)
			assert.LessOrEqual(t, r, 21.0+1e-9)
		}
	}
}

func TestTextSize_Accepts(t *testing.T) {
	assert.True(t, Normal.Accepts(4.5), "exactly 4.5 passes for normal text")
	assert.False(t, Normal.Accepts(4.4999999))
	assert.True(t, Large.Accepts(3.0), "exactly 3.0 passes for large text")
	assert.False(t, Large.Accepts(2.9999999))
	assert.True(t, Large.Accepts(4.0))
	assert.False(t, Normal.Accepts(4.0))
}

func TestTextSize(t *testing.T) {
	assert.Equal(t, 3.0, Large.Threshold())
	assert.Equal(t, 4.5, Normal.Threshold())
	assert.Equal(t, "large", Large.String())
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, Normal, Large.Toggle())
	assert.Equal(t, Large, Normal.Toggle())
}

func TestParseTextSize(t *testing.T) {
	size, err := ParseTextSize("Normal")
	require.NoError(t, err)
	assert.Equal(t, Normal, size)

	size, err = ParseTextSize(" large ")
	require.NoError(t, err)
	assert.Equal(t, Large, size)

	_, err = ParseTextSize("huge")
	assert.True(t, errors.Is(err, ErrUnknownTextSize))
}
