package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	t.Run("identical points are zero meters apart", func(t *testing.T) {
		d := CalculateHaversineDistance(-23.5505, -46.6333, -23.5505, -46.6333)
		assert.Zero(t, d)
	})

	t.Run("short distance within one block", func(t *testing.T) {
		// Roughly 111 meters per 0.001 degree of latitude.
		d := CalculateHaversineDistance(-23.5505, -46.6333, -23.5515, -46.6333)
		assert.InDelta(t, 111, d, 2)
	})

	t.Run("São Paulo to Rio de Janeiro", func(t *testing.T) {
		d := CalculateHaversineDistance(-23.5505, -46.6333, -22.9068, -43.1729)
		assert.InDelta(t, 360000, d, 5000)
	})
}
