package output

import (
	"strconv"

	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/reconciler"
	"github.com/agentstation/tripmap/pkg/venues"
)

// VenueRow is the structured form of one visible venue.
type VenueRow struct {
	Position   int            `json:"position" yaml:"position"`
	Name       string         `json:"name" yaml:"name"`
	Type       venues.Tag     `json:"type" yaml:"type"`
	Group      string         `json:"group,omitempty" yaml:"group,omitempty"`
	Rating     ratings.Rating `json:"rating" yaml:"rating"`
	Price      string         `json:"price,omitempty" yaml:"price,omitempty"`
	Address    string         `json:"address,omitempty" yaml:"address,omitempty"`
	Action     string         `json:"action" yaml:"action"`
	Directions string         `json:"directions" yaml:"directions"`
}

// VenueRows flattens a reconciliation result in display order.
func VenueRows(result *reconciler.Result) []VenueRow {
	rows := make([]VenueRow, 0, result.Len())
	for i, e := range result.Entries {
		rows = append(rows, VenueRow{
			Position:   i + 1,
			Name:       e.Venue.Name,
			Type:       e.Venue.Type,
			Group:      e.Group,
			Rating:     e.Rating,
			Price:      e.Venue.Price,
			Address:    e.Venue.Address,
			Action:     e.Venue.ActionLabel(),
			Directions: e.Venue.DirectionsURL(),
		})
	}
	return rows
}

// ResultTable converts a reconciliation result to table format. Group
// columns appear only under grouped sorting and details only when not compact.
func ResultTable(result *reconciler.Result, compact bool) Data {
	headers := []string{"#"}
	align := []Align{AlignRight}
	if result.Grouped() {
		headers = append(headers, "Group")
		align = append(align, AlignLeft)
	}
	headers = append(headers, "Name", "Type", "Rating")
	align = append(align, AlignLeft, AlignLeft, AlignLeft)
	if !compact {
		headers = append(headers, "Price", "Address", "Action")
		align = append(align, AlignCenter, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, result.Len())
	for i, e := range result.Entries {
		row := []string{strconv.Itoa(i + 1)}
		if result.Grouped() {
			row = append(row, e.Group)
		}
		row = append(row, e.Venue.Name, string(e.Venue.Type), emoji.Stars(e.Rating))
		if !compact {
			row = append(row, dash(e.Venue.Price), dash(e.Venue.Address), e.Venue.ActionLabel())
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RatingRow is one rated venue.
type RatingRow struct {
	Name   string         `json:"name" yaml:"name"`
	Rating ratings.Rating `json:"rating" yaml:"rating"`
}

// RatingRows lists the rated venues by name.
func RatingRows(m ratings.Mapping) []RatingRow {
	names := m.Names()
	rows := make([]RatingRow, len(names))
	for i, name := range names {
		rows[i] = RatingRow{Name: name, Rating: m.Get(name)}
	}
	return rows
}

// RatingsTable converts a rating mapping to table format.
func RatingsTable(m ratings.Mapping) Data {
	rows := make([][]string, 0, len(m))
	for _, r := range RatingRows(m) {
		rows = append(rows, []string{r.Name, emoji.Stars(r.Rating), strconv.Itoa(int(r.Rating))})
	}
	return Data{
		Headers:         []string{"Venue", "Rating", "Stars"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight},
	}
}

// ItineraryTable converts an itinerary to table format. Slots whose venue
// is not in set are flagged.
func ItineraryTable(it *venues.Itinerary, set *venues.Set) Data {
	var rows [][]string
	if it != nil {
		for _, day := range it.Days {
			for _, slot := range day.Slots {
				venue := slot.Venue
				if venue != "" {
					if _, ok := set.Lookup(venue); !ok {
						venue += " " + emoji.Error
					}
				}
				rows = append(rows, []string{day.Title, dash(slot.Time), slot.Title, dash(venue)})
			}
		}
	}
	return Data{Headers: []string{"Day", "Time", "Title", "Venue"}, Rows: rows}
}

// MenuTable converts a venue menu to table format.
func MenuTable(menu *venues.Menu) Data {
	var rows [][]string
	if menu != nil {
		for _, item := range menu.Items {
			rows = append(rows, []string{item.Name, dash(item.Desc)})
		}
	}
	return Data{Headers: []string{"Item", "Description"}, Rows: rows}
}

func dash(s string) string {
	if s == "" {
		return emoji.Unrated
	}
	return s
}
