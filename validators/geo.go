package validators

import (
	"context"
	"fmt"

	"github.com/metno/llfschema"
)

// Point is a validated longitude/latitude pair in degrees.
type Point struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

func (p Point) String() string { return fmt.Sprintf("%f,%f", p.Lon, p.Lat) }

type lonLat struct{}

func (lonLat) Validate(_ context.Context, v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a coordinate pair, got %T", ErrWrongType, v)
	}
	if len(seq) != 2 {
		return nil, fmt.Errorf("%w: coordinate pair has %d elements", ErrWrongType, len(seq))
	}
	lon, ok := llfschema.AsNumber(seq[0])
	if !ok {
		return nil, fmt.Errorf("%w: longitude is %T", ErrWrongType, seq[0])
	}
	lat, ok := llfschema.AsNumber(seq[1])
	if !ok {
		return nil, fmt.Errorf("%w: latitude is %T", ErrWrongType, seq[1])
	}
	if !(lon >= -180 && lon <= 180) {
		return nil, fmt.Errorf("%w: longitude %v", ErrOutOfRange, lon)
	}
	if !(lat >= -90 && lat <= 90) {
		return nil, fmt.Errorf("%w: latitude %v", ErrOutOfRange, lat)
	}
	return Point{Lon: lon, Lat: lat}, nil
}

// LonLat checks a [lon, lat] pair and returns a Point.
func LonLat() llfschema.Custom { return llfschema.Custom{Name: "lonlat", Validator: lonLat{}} }
