package tripmap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/internal/transport"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
	"github.com/agentstation/tripmap/pkg/viewsync"
)

// options holds the configuration applied by New.
type options struct {
	datasetPath   string
	venues        []venues.Venue
	itineraryPath string
	itinerary     *venues.Itinerary
	remote        ratings.Remote
	local         ratings.Local
	presenter     viewsync.Presenter
	logger        *zerolog.Logger
	state         *selection.State
}

// Option is a function that configures an Explorer.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithDatasetPath loads venues from a JSON, JSONC or YAML file.
func WithDatasetPath(path string) Option {
	return func(o *options) error {
		o.datasetPath = path
		return nil
	}
}

// WithVenues uses an in-memory dataset instead of a file.
func WithVenues(list []venues.Venue) Option {
	return func(o *options) error {
		o.venues = list
		return nil
	}
}

// WithItinerary sets the itinerary whose slots are cross-referenced.
func WithItinerary(it *venues.Itinerary) Option {
	return func(o *options) error {
		o.itinerary = it
		return nil
	}
}

// WithItineraryPath loads the itinerary from a file.
func WithItineraryPath(path string) Option {
	return func(o *options) error {
		o.itineraryPath = path
		return nil
	}
}

// WithRemote sets the authoritative rating service.
func WithRemote(remote ratings.Remote) Option {
	return func(o *options) error {
		o.remote = remote
		return nil
	}
}

// WithRemoteURL talks to the rating service at url. An empty url disables
// the remote tier.
func WithRemoteURL(url string, opts ...transport.Option) Option {
	return func(o *options) error {
		if url == "" {
			o.remote = nil
			return nil
		}
		client, err := transport.New(url, opts...)
		if err != nil {
			return err
		}
		o.remote = client
		return nil
	}
}

// WithLocal sets the local fallback tier. The Explorer closes it on Close.
func WithLocal(local ratings.Local) Option {
	return func(o *options) error {
		if local == nil {
			return &errors.ValidationError{Field: "local", Message: "local store cannot be nil"}
		}
		o.local = local
		return nil
	}
}

// WithPresenter sets the presentation layer.
func WithPresenter(p viewsync.Presenter) Option {
	return func(o *options) error {
		if p == nil {
			return &errors.ValidationError{Field: "presenter", Message: "presenter cannot be nil"}
		}
		o.presenter = p
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithSelection sets the initial selection state. The default is Browse
// mode with every tag active.
func WithSelection(state selection.State) Option {
	return func(o *options) error {
		o.state = &state
		return nil
	}
}
