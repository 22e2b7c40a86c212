// Package venues holds the immutable venue dataset: the venue records, the
// tag enumeration with its display partition, itineraries, and the loaders
// that read them from JSON, JSON with comments, or YAML.
package venues

import (
	"net/url"
	"strings"

	"github.com/agentstation/tripmap/pkg/geo"
)

// MenuItem is a single dish or highlight on a venue menu.
type MenuItem struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Desc string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// Menu is the optional structured menu of a venue.
type Menu struct {
	Items []MenuItem `json:"items" yaml:"items" validate:"dive"`
	URL   string     `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
}

// Venue is a geo-located point of interest. Name is globally unique.
type Venue struct {
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Lat      float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng" yaml:"lng" validate:"gte=-180,lte=180"`
	Type     Tag     `json:"type" yaml:"type" validate:"required,venuetag"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
	Price    string  `json:"price,omitempty" yaml:"price,omitempty"`
	Address  string  `json:"address,omitempty" yaml:"address,omitempty"`
	Desc     string  `json:"desc,omitempty" yaml:"desc,omitempty"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	Badge    string  `json:"badge,omitempty" yaml:"badge,omitempty"`
	Menu     *Menu   `json:"menu,omitempty" yaml:"menu,omitempty" validate:"omitempty"`
	URL      string  `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
}

// Point returns the venue coordinate.
func (v Venue) Point() geo.Point {
	return geo.Point{Lat: v.Lat, Lng: v.Lng}
}

// ActionLabel is "Reserve" for restaurants and "Book" for everything else.
func (v Venue) ActionLabel() string {
	if v.Type.IsRestaurant() {
		return "Reserve"
	}
	return "Book"
}

// DirectionsURL returns a map search link for the venue name and address.
func (v Venue) DirectionsURL() string {
	query := strings.ReplaceAll(url.QueryEscape(v.Name+" "+v.Address), "+", "%20")
	return "https://www.google.com/maps/search/?api=1&query=" + query
}

// HasMenu reports whether the venue carries a menu record.
func (v Venue) HasMenu() bool {
	return v.Menu != nil
}
