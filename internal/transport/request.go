package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// SetRequest is the POST body of the rating service. A zero Star clears
// the rating.
type SetRequest struct {
	Name string         `json:"name" validate:"required"`
	Star ratings.Rating `json:"star" validate:"min=0,max=5"`
}

// newRequest builds a request with an optional JSON body.
func newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapParse("json", "request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.WrapResource("create", "request", method+" "+url, err)
	}
	return req, nil
}

// DecodeResponse decodes a JSON response into the target structure.
// Any non-2xx status or undecodable body is reported as a RemoteError.
func DecodeResponse(resp *http.Response, target any) error {
	method, endpoint := "", ""
	logger := logging.Default()
	if resp.Request != nil {
		method = resp.Request.Method
		endpoint = resp.Request.URL.String()
		logger = logging.FromContext(resp.Request.Context())
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn().Err(err).Str("endpoint", endpoint).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBody))
	if err != nil {
		return errors.WrapRemote(method, endpoint, errors.WrapIO("read", "response body", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewRemoteError(method, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapRemote(method, endpoint, errors.WrapParse("json", "response", err))
	}

	return nil
}
