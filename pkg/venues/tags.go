package venues

import "strings"

// Tag is the group tag carried by every venue.
type Tag string

// The fixed tag enumeration.
const (
	TagRestaurantStar  Tag = "restaurant-star"
	TagRestaurantOther Tag = "restaurant-other"
	TagHotelHilton     Tag = "hotel-hilton"
	TagHotelLux        Tag = "hotel-lux"
	TagHotelMid        Tag = "hotel-mid"
	TagDayTrip         Tag = "daytrip"
)

// Group is one entry of the display partition.
type Group struct {
	Tag   Tag    `json:"tag" yaml:"tag"`
	Label string `json:"label" yaml:"label"`
}

// groups is the display partition in display order.
var groups = []Group{
	{Tag: TagRestaurantStar, Label: "⭐ Michelin-Starred Restaurants"},
	{Tag: TagRestaurantOther, Label: "🍽️ Recommended & Bib Gourmand"},
	{Tag: TagHotelHilton, Label: "🔹 Hilton Honors (Aspire/FN)"},
	{Tag: TagHotelLux, Label: "🏨 Luxury Hotels"},
	{Tag: TagHotelMid, Label: "🏡 Mid-Range & Budget Hotels"},
	{Tag: TagDayTrip, Label: "🇩🇰 Solvang Day Trip"},
}

// Groups returns the display partition in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// AllTags returns every tag in display order.
func AllTags() []Tag {
	tags := make([]Tag, len(groups))
	for i, g := range groups {
		tags[i] = g.Tag
	}
	return tags
}

// ParseTag returns the tag named s and whether it is part of the enumeration.
func ParseTag(s string) (Tag, bool) {
	t := Tag(strings.TrimSpace(strings.ToLower(s)))
	return t, t.Valid()
}

// Valid reports whether t is part of the enumeration.
func (t Tag) Valid() bool {
	return t.index() >= 0
}

// Label returns the group label for t, or the empty string for unknown tags.
func (t Tag) Label() string {
	if i := t.index(); i >= 0 {
		return groups[i].Label
	}
	return ""
}

// IsRestaurant reports whether t belongs to one of the restaurant tiers.
func (t Tag) IsRestaurant() bool {
	return strings.HasPrefix(string(t), "restaurant")
}

func (t Tag) index() int {
	for i, g := range groups {
		if g.Tag == t {
			return i
		}
	}
	return -1
}
