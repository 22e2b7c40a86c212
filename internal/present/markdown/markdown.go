// Package markdown exports a reconciled view as a markdown trip sheet.
package markdown

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/pkg/reconciler"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Document is everything an export needs.
type Document struct {
	Title     string
	Result    *reconciler.Result
	Itinerary *venues.Itinerary
	Set       *venues.Set

	// Compact drops addresses, descriptions and menus.
	Compact bool
}

// Export writes doc to w.
func Export(w io.Writer, doc Document) error {
	m := md.NewMarkdown(w)

	title := doc.Title
	if title == "" {
		title = "Trip Sheet"
	}
	m.H1(title)

	switch {
	case doc.Result == nil || doc.Result.Empty():
		m.PlainText(md.Italic("No venues match the current filters.")).LF()
	case doc.Result.Grouped():
		for _, section := range doc.Result.Sections {
			m.H2(section.Label)
			m.Table(venueTable(section.Entries, doc.Compact))
		}
	default:
		m.H2("Venues (" + doc.Result.Sort.String() + ")")
		m.Table(venueTable(doc.Result.Entries, doc.Compact))
	}

	if !doc.Compact && doc.Result != nil {
		writeMenus(m, doc.Result.Entries)
	}
	if doc.Itinerary != nil && len(doc.Itinerary.Days) > 0 {
		writeItinerary(m, doc.Itinerary, doc.Set)
	}

	return m.Build()
}

func venueTable(entries []reconciler.Entry, compact bool) md.TableSet {
	header := []string{"Venue", "Rating"}
	if !compact {
		header = append(header, "Address", "Details")
	}
	header = append(header, "Links")

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		v := e.Venue
		name := v.Name
		if v.Badge != "" {
			name += " " + md.Code(v.Badge)
		}
		row := []string{md.Bold(name), emoji.Stars(e.Rating)}
		if !compact {
			row = append(row, cell(v.Address), cell(details(v)))
		}
		row = append(row, links(v))
		rows = append(rows, row)
	}
	return md.TableSet{Header: header, Rows: rows}
}

func details(v venues.Venue) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{v.Category, v.Price, v.Desc} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

func links(v venues.Venue) string {
	out := md.Link("Directions", v.DirectionsURL())
	if v.URL != "" {
		out = md.Link(v.ActionLabel(), v.URL) + " " + out
	}
	if v.HasMenu() && v.Menu.URL != "" {
		out += " " + md.Link("Menu", v.Menu.URL)
	}
	return out
}

func writeMenus(m *md.Markdown, entries []reconciler.Entry) {
	wrote := false
	for _, e := range entries {
		if !e.Venue.HasMenu() || len(e.Venue.Menu.Items) == 0 {
			continue
		}
		if !wrote {
			m.H2("Menus")
			wrote = true
		}
		m.H3(e.Venue.Name)
		items := make([]string, len(e.Venue.Menu.Items))
		for i, item := range e.Venue.Menu.Items {
			items[i] = md.Bold(item.Name)
			if item.Desc != "" {
				items[i] += ": " + item.Desc
			}
		}
		m.BulletList(items...)
	}
}

func writeItinerary(m *md.Markdown, it *venues.Itinerary, set *venues.Set) {
	m.H2("Itinerary")
	for _, day := range it.Days {
		m.H3(day.Title)
		items := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			var b strings.Builder
			if slot.Time != "" {
				b.WriteString(md.Bold(slot.Time) + " ")
			}
			b.WriteString(slot.Title)
			if slot.Venue != "" {
				if v, ok := set.Find(slot.Venue); ok {
					b.WriteString(" at " + md.Link(v.Name, v.DirectionsURL()))
				} else {
					b.WriteString(" at " + slot.Venue)
				}
			}
			items = append(items, b.String())
		}
		m.BulletList(items...)
	}
}

func cell(s string) string {
	if s == "" {
		return emoji.Unrated
	}
	return s
}
