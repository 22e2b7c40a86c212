// Package text renders the explorer to a terminal. Markers become rows of
// a table and the viewport is tracked rather than drawn.
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/pkg/geo"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/viewsync"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Viewport is the last camera position requested by the view layer.
type Viewport struct {
	Bounds geo.Bounds
	Center geo.Point
	Zoom   int
}

type marker struct {
	venue    venues.Venue
	visible  bool
	popup    bool
	emphasis viewsync.Emphasis
}

// Presenter writes the list and popups to out. It is safe for concurrent use.
type Presenter struct {
	mu       sync.Mutex
	out      io.Writer
	logger   *zerolog.Logger
	title    cases.Caser
	markers  map[viewsync.Handle]*marker
	order    []viewsync.Handle
	active   string
	viewport Viewport
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for viewport changes.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Presenter) {
		p.logger = logger
	}
}

// New creates a Presenter writing to out.
func New(out io.Writer, opts ...Option) *Presenter {
	p := &Presenter{
		out:     out,
		logger:  logging.Default(),
		title:   cases.Title(language.English),
		markers: make(map[viewsync.Handle]*marker),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateMarker registers a hidden marker for v.
func (p *Presenter) CreateMarker(v venues.Venue) (viewsync.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := viewsync.Handle(uuid.NewString())
	p.markers[h] = &marker{venue: v, emphasis: viewsync.Base}
	p.order = append(p.order, h)
	return h, nil
}

// ShowMarker makes the marker visible.
func (p *Presenter) ShowMarker(h viewsync.Handle) {
	p.with(h, func(m *marker) { m.visible = true })
}

// HideMarker hides the marker and its popup.
func (p *Presenter) HideMarker(h viewsync.Handle) {
	p.with(h, func(m *marker) {
		m.visible = false
		m.popup = false
	})
}

// SetEmphasis records the marker's rendering weight.
func (p *Presenter) SetEmphasis(h viewsync.Handle, e viewsync.Emphasis) {
	p.with(h, func(m *marker) { m.emphasis = e })
}

// OpenPopup prints the venue card.
func (p *Presenter) OpenPopup(h viewsync.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.markers[h]
	if !ok || m.popup {
		return
	}
	m.popup = true
	p.printCard(m.venue)
}

// ClosePopup closes the venue card.
func (p *Presenter) ClosePopup(h viewsync.Handle) {
	p.with(h, func(m *marker) { m.popup = false })
}

// RenderList prints the visible venues as a table, with a header row per
// group under grouped sorting.
func (p *Presenter) RenderList(list viewsync.List) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := list.Result
	if result == nil || result.Empty() {
		fmt.Fprintln(p.out, "No venues match the current filters.")
		return
	}

	headers := []any{"#", "Name", "Type", "Rating"}
	if !list.Compact {
		headers = append(headers, "Address", "Action")
	}
	table := tablewriter.NewTable(p.out)
	table.Header(headers...)

	p.active = ""
	lastGroup := ""
	for i, e := range result.Entries {
		if result.Grouped() && e.Group != lastGroup {
			lastGroup = e.Group
			if err := table.Append(p.groupRow(e.Group, len(headers))...); err != nil {
				p.logger.Warn().Err(err).Msg("Failed to render group header")
			}
		}

		row := []any{strconv.Itoa(i + 1), e.Venue.Name, p.typeLabel(e.Venue.Type), emoji.Stars(e.Rating)}
		if !list.Compact {
			row = append(row, e.Venue.Address, e.Venue.ActionLabel())
		}
		if err := table.Append(row...); err != nil {
			p.logger.Warn().Err(err).Str("venue", e.Venue.Name).Msg("Failed to render venue")
		}
	}

	if err := table.Render(); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to render venue list")
	}
	fmt.Fprintf(p.out, "%d venues shown\n", result.Len())
}

// SetActiveItem marks name as the active list item. Rendering the list
// clears it.
func (p *Presenter) SetActiveItem(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = name
	if name != "" {
		fmt.Fprintf(p.out, "%s %s\n", emoji.Active, name)
	}
}

// ActiveItem returns the active list item.
func (p *Presenter) ActiveItem() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// ShowMessage prints msg in place of the list.
func (p *Presenter) ShowMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, msg)
}

// FitBounds records the requested viewport.
func (p *Presenter) FitBounds(b geo.Bounds) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewport = Viewport{Bounds: b, Center: b.Center()}
	p.logger.Debug().
		Float64("south", b.SouthWest.Lat).
		Float64("west", b.SouthWest.Lng).
		Float64("north", b.NorthEast.Lat).
		Float64("east", b.NorthEast.Lng).
		Msg("Viewport fitted")
}

// FlyTo records a focused viewport.
func (p *Presenter) FlyTo(pt geo.Point, zoom int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewport = Viewport{Bounds: geo.BoundsOf(pt), Center: pt, Zoom: zoom}
	p.logger.Debug().
		Float64("lat", pt.Lat).
		Float64("lng", pt.Lng).
		Int("zoom", zoom).
		Msg("Viewport focused")
}

// Viewport returns the last requested viewport.
func (p *Presenter) Viewport() Viewport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewport
}

// Visible returns the names of visible markers in creation order.
func (p *Presenter) Visible() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var names []string
	for _, h := range p.order {
		if m := p.markers[h]; m.visible {
			names = append(names, m.venue.Name)
		}
	}
	return names
}

// Emphasized returns the name of the marker drawn above the others, if any.
func (p *Presenter) Emphasized() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range p.order {
		if m := p.markers[h]; m.visible && m.emphasis == viewsync.Emphasized {
			return m.venue.Name, true
		}
	}
	return "", false
}

func (p *Presenter) with(h viewsync.Handle, fn func(*marker)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.markers[h]; ok {
		fn(m)
	}
}

func (p *Presenter) printCard(v venues.Venue) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", emoji.Pin, v.Name, p.typeLabel(v.Type))
	if v.Category != "" {
		fmt.Fprintf(&b, "   %s\n", v.Category)
	}
	if v.Address != "" {
		fmt.Fprintf(&b, "   %s\n", v.Address)
	}
	if v.URL != "" {
		fmt.Fprintf(&b, "   %s: %s\n", v.ActionLabel(), v.URL)
	}
	fmt.Fprintf(&b, "   Directions: %s\n", v.DirectionsURL())
	fmt.Fprint(p.out, b.String())
}

func (p *Presenter) groupRow(label string, width int) []any {
	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}
	row[1] = label
	return row
}

// typeLabel turns "hotel-lux" into "Hotel Lux".
func (p *Presenter) typeLabel(t venues.Tag) string {
	return p.title.String(strings.ReplaceAll(string(t), "-", " "))
}
