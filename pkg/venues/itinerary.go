package venues

import (
	"os"

	"github.com/agentstation/tripmap/pkg/errors"
)

// Slot is one entry of an itinerary day. Venue is empty for slots that do
// not reference a venue.
type Slot struct {
	Time  string `json:"time,omitempty" yaml:"time,omitempty"`
	Title string `json:"title" yaml:"title"`
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`
}

// Day groups the slots of one itinerary day.
type Day struct {
	Title string `json:"title" yaml:"title"`
	Slots []Slot `json:"slots" yaml:"slots"`
}

// Itinerary is the ordered plan whose slots cross-reference venues by name.
type Itinerary struct {
	Days []Day `json:"days" yaml:"days"`
}

// VenueNames returns the referenced venue names in first-appearance order.
func (it *Itinerary) VenueNames() []string {
	if it == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, day := range it.Days {
		for _, slot := range day.Slots {
			if slot.Venue == "" || seen[slot.Venue] {
				continue
			}
			seen[slot.Venue] = true
			names = append(names, slot.Venue)
		}
	}
	return names
}

// Unresolved returns the referenced names that are missing from set.
func (it *Itinerary) Unresolved(set *Set) []string {
	var missing []string
	for _, name := range it.VenueNames() {
		if _, ok := set.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// LoadItinerary reads an itinerary document from YAML, JSON, or JSON with comments.
func LoadItinerary(path string) (*Itinerary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	it, err := DecodeItinerary(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.WrapResource("load", "itinerary", path, err)
	}
	return it, nil
}

// DecodeItinerary parses an itinerary document.
func DecodeItinerary(data []byte, format Format) (*Itinerary, error) {
	var it Itinerary
	if err := decodeInto(data, format, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
