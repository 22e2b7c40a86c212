package context

import (
	stdctx "context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
)

// MockContext provides a mock implementation of Context for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &context.MockContext{
//	    ExplorerFunc: func(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error) {
//	        return tripmap.New(ctx, append([]tripmap.Option{tripmap.WithVenues(list)}, opts...)...)
//	    },
//	    Out: &buf,
//	}
//	cmd := list.NewCommand(mock)
type MockContext struct {
	ExplorerFunc     func(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error)
	OpenLocalFunc    func(kind, path string) (ratings.Local, error)
	RatingsURLValue  string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	Out              io.Writer
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Explorer returns an explorer using the mock function or nil.
func (m *MockContext) Explorer(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error) {
	if m.ExplorerFunc != nil {
		return m.ExplorerFunc(ctx, opts...)
	}
	return nil, nil
}

// OpenLocal returns a store using the mock function or an in-memory store.
func (m *MockContext) OpenLocal(kind, path string) (ratings.Local, error) {
	if m.OpenLocalFunc != nil {
		return m.OpenLocalFunc(kind, path)
	}
	return memory.New(), nil
}

// RatingsURL returns RatingsURLValue.
func (m *MockContext) RatingsURL() string {
	return m.RatingsURLValue
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *MockContext) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *MockContext) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Stdout returns Out or io.Discard.
func (m *MockContext) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return io.Discard
}

// Version returns version using the mock function or "dev".
func (m *MockContext) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *MockContext) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *MockContext) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *MockContext) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
