package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "50%", want: Length{Value: 50, Unit: UnitPercent}},
		{in: " 12.5 % ", want: Length{Value: 12.5, Unit: UnitPercent}},
		{in: "120px", want: Length{Value: 120, Unit: UnitPixels}},
		{in: "300", want: Length{Value: 300, Unit: UnitPixels}},
		{in: "abc", wantErr: true},
		{in: "px", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLength_Conversions(t *testing.T) {
	assert.InDelta(t, 200, Length{Value: 50, Unit: UnitPercent}.Pixels(400), 1e-9)
	assert.InDelta(t, 0.5, Length{Value: 50, Unit: UnitPercent}.Fraction(400), 1e-9)
	assert.InDelta(t, 0.25, Length{Value: 100, Unit: UnitPixels}.Fraction(400), 1e-9)
	assert.Zero(t, Length{Value: 100, Unit: UnitPixels}.Fraction(0))
	assert.Equal(t, "50%", Length{Value: 50, Unit: UnitPercent}.String())
	assert.Equal(t, "12.5px", Length{Value: 12.5, Unit: UnitPixels}.String())
}

func TestPlacement_Resolve(t *testing.T) {
	container := Vec2{X: 800, Y: 600}
	hint := Vec2{X: 300, Y: 200}

	t.Run("nil placement uses hint", func(t *testing.T) {
		var p *Placement
		got := p.Resolve(container, hint)
		assert.Equal(t, 300.0, got.W)
		assert.Equal(t, 200.0, got.H)
		assert.False(t, got.HasX)
	})

	t.Run("mixed units", func(t *testing.T) {
		p := &Placement{X: Pct(10), Y: Px(30), W: Pct(50)}
		got := p.Resolve(container, hint)
		assert.InDelta(t, 80, got.X, 1e-9)
		assert.InDelta(t, 30, got.Y, 1e-9)
		assert.InDelta(t, 400, got.W, 1e-9)
		assert.InDelta(t, 200, got.H, 1e-9)
		assert.True(t, got.HasX)
		assert.True(t, got.HasY)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	// Conflicting bounds: lower bound wins.
	assert.Equal(t, 0.7, Clamp(0.5, 0.7, 0.3))
	assert.Equal(t, 0.5, PixelsToFraction(200, 400))
	assert.Equal(t, 0.0, PixelsToFraction(200, 0))
}
