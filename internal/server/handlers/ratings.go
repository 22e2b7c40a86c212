package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/tripmap/internal/server/response"
	"github.com/agentstation/tripmap/internal/transport"
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// HandleRatings handles GET and POST on /api/ratings.
func (h *Handlers) HandleRatings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.HandleGetRatings(w, r)
	case http.MethodPost:
		h.HandleSetRating(w, r)
	default:
		response.MethodNotAllowed(w, r.Method)
	}
}

// HandleGetRatings answers with the full rating mapping.
func (h *Handlers) HandleGetRatings(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	m, err := ratings.ReadMapping(h.local, h.key)
	h.mu.Unlock()
	if err != nil {
		h.logger.Error().Err(err).Str("key", h.key).Msg("Failed to read ratings")
		response.InternalError(w, err)
		return
	}
	response.Raw(w, http.StatusOK, m)
}

// HandleSetRating stores one rating and answers with the resulting mapping.
// A star of 0 removes the venue from the mapping.
func (h *Handlers) HandleSetRating(w http.ResponseWriter, r *http.Request) {
	var req transport.SetRequest
	body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RequestTooLarge(w, tooLarge.Limit)
			return
		}
		response.ErrorFromType(w, errors.WrapParse("json", "request", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.ErrorFromType(w, validationError(err))
		return
	}

	h.mu.Lock()
	m, err := ratings.ReadMapping(h.local, h.key)
	if err == nil {
		if req.Star == ratings.Unrated {
			delete(m, req.Name)
		} else {
			m[req.Name] = req.Star
		}
		err = ratings.WriteMapping(h.local, h.key, m)
	}
	h.mu.Unlock()
	if err != nil {
		h.logger.Error().Err(err).Str("venue", req.Name).Msg("Failed to store rating")
		response.InternalError(w, err)
		return
	}

	h.logger.Debug().
		Str("venue", req.Name).
		Int("star", int(req.Star)).
		Msg("Rating stored")
	response.Raw(w, http.StatusOK, m)
}

// validationError reports the first failing field of a SetRequest.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := "name"
		if fe.Field() == "Star" {
			field = "star"
		}
		return errors.NewValidationError(field, fe.Value(), "failed "+fe.Tag()+" check")
	}
	return errors.NewValidationError("", nil, err.Error())
}
