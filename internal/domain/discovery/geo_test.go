package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		a    model.Coordinate
		b    model.Coordinate
		want float64
	}{
		{
			name: "one degree of longitude at the equator",
			a:    model.Coordinate{Lat: 0, Lon: 0},
			b:    model.Coordinate{Lat: 0, Lon: 1},
			want: 111.19,
		},
		{
			name: "halifax area diagonal",
			a:    model.Coordinate{Lat: 45, Lon: -63},
			b:    model.Coordinate{Lat: 46, Lon: -64},
			want: 135.79,
		},
		{
			name: "one degree of latitude",
			a:    model.Coordinate{Lat: 10, Lon: 20},
			b:    model.Coordinate{Lat: 11, Lon: 20},
			want: 111.19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 0.5)
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		a model.Coordinate
		b model.Coordinate
	}{
		{model.Coordinate{Lat: 45, Lon: -63}, model.Coordinate{Lat: 46, Lon: -64}},
		{model.Coordinate{Lat: -33.86, Lon: 151.21}, model.Coordinate{Lat: 51.5, Lon: -0.12}},
		{model.Coordinate{Lat: 0, Lon: 179.9}, model.Coordinate{Lat: 0, Lon: -179.9}},
	}

	for _, p := range pairs {
		assert.InDelta(t, Distance(p.a, p.b), Distance(p.b, p.a), 1e-9)
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []model.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 45, Lon: -63},
		{Lat: -89.9, Lon: 12.3},
	}

	for _, p := range points {
		assert.InDelta(t, 0, Distance(p, p), 1e-9)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	coords := []model.Coordinate{
		{Lat: 12.5, Lon: 99.1},
		{Lat: -45.2, Lon: -170.6},
		{Lat: 89.9, Lon: 0},
		{Lat: 0, Lon: 0},
	}

	for _, a := range coords {
		for _, b := range coords {
			assert.GreaterOrEqual(t, Distance(a, b), 0.0)
		}
	}
}
