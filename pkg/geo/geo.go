// Package geo provides the small amount of coordinate math the view layer needs:
// points, bounding boxes, and padding.
package geo

// Point is a WGS 84 coordinate.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Bounds is a rectangular region. The zero value is empty.
type Bounds struct {
	SouthWest Point `json:"south_west" yaml:"south_west"`
	NorthEast Point `json:"north_east" yaml:"north_east"`
	valid     bool
}

// BoundsOf returns the smallest bounds containing every point.
func BoundsOf(points ...Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Extend returns b grown to contain p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.valid {
		return Bounds{SouthWest: p, NorthEast: p, valid: true}
	}
	b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	return b
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool {
	return !b.valid
}

// Pad returns b enlarged on every side by ratio times its height and width.
func (b Bounds) Pad(ratio float64) Bounds {
	if !b.valid {
		return b
	}
	dLat := (b.NorthEast.Lat - b.SouthWest.Lat) * ratio
	dLng := (b.NorthEast.Lng - b.SouthWest.Lng) * ratio
	return Bounds{
		SouthWest: Point{Lat: b.SouthWest.Lat - dLat, Lng: b.SouthWest.Lng - dLng},
		NorthEast: Point{Lat: b.NorthEast.Lat + dLat, Lng: b.NorthEast.Lng + dLng},
		valid:     true,
	}
}

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return b.valid &&
		p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}
