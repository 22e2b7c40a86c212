package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/tripmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "venue",
			ID:       "Cafe X",
		}
		assert.Equal(t, `venue "Cafe X" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("venue", "test")
		wrapped := fmt.Errorf("rate: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("star", 7, "must be between 1 and 5")
		assert.Equal(t, "validation failed for field star: must be between 1 and 5", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty dataset"}
		assert.Equal(t, "validation failed: empty dataset", err.Error())
	})
}

func TestRemoteError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewRemoteError("GET", "http://localhost/api/ratings", 503, "service unavailable")
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "GET")
		assert.True(t, pkgerrors.IsRemoteUnavailable(err))
	})

	t.Run("wrapped transport error", func(t *testing.T) {
		base := errors.New("connection refused")
		err := pkgerrors.WrapRemote("POST", "http://localhost/api/ratings", base)
		require.Error(t, err)
		assert.ErrorIs(t, err, base)
		assert.True(t, pkgerrors.IsRemoteUnavailable(err))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapRemote("GET", "x", nil))
	})
}

func TestDatasetError(t *testing.T) {
	base := pkgerrors.NewIOError("read", "locations.json", errors.New("no such file"))
	err := pkgerrors.WrapDataset("locations.json", base)

	assert.True(t, pkgerrors.IsDatasetError(err))
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Operation)
	assert.Contains(t, err.Error(), "locations.json")
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("open", "store", "", nil))
	assert.NoError(t, pkgerrors.WrapDataset("x", nil))

	err := pkgerrors.WrapParse("yaml", "itinerary.yaml", errors.New("bad indent"))
	assert.Equal(t, "parse error in yaml file itinerary.yaml: bad indent", err.Error())

	err = pkgerrors.WrapResource("open", "local store", "/tmp/db", errors.New("locked"))
	assert.Equal(t, "failed to open local store /tmp/db: locked", err.Error())
}

func TestConfigError(t *testing.T) {
	base := errors.New("unknown backend")
	err := pkgerrors.NewConfigError("local_store", "unsupported value", base)
	assert.Equal(t, "configuration error in local_store: unsupported value", err.Error())
	assert.ErrorIs(t, err, base)
}
