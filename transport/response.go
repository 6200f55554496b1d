package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	utilsContext "github.com/muhammadheryan/farm-portal/utils/context"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
)

// Response is the envelope of every API reply.
type Response struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      interface{}         `json:"data,omitempty"`
	Errors    []errors.FieldError `json:"errors,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

const errorCodeHeader = "X-Error-Code"

func writeJSON(w http.ResponseWriter, status int, body Response) {
	body.Timestamp = time.Now().UTC()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "success", Data: data})
}

func writeCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func writeSuccessMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// writeError maps a CustomError to its status code. Anything else is an
// internal failure whose detail is logged but never sent to the client.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unmapped error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set(errorCodeHeader, ce.ErrorCode())
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Success: false,
		Message: ce.Error(),
		Errors:  ce.Fields(),
	})
}

// decodeRequest reads a JSON body into dst and runs its validate tags.
func decodeRequest(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithDetail("malformed JSON body")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		fields := validatorx.FieldErrors(err)
		if len(fields) == 0 {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return errors.SetCustomError(constant.ErrInvalidRequest).WithFields(fields...)
	}
	return nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: key, Rule: "integer"})
	}
	return v, nil
}

func queryBool(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: key, Rule: "boolean"})
	}
	return v, nil
}

func queryDate(r *http.Request, key string) (*model.Date, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: key, Rule: "date=YYYY-MM-DD"})
	}
	return &model.Date{Time: t}, nil
}

// pageRequest reads page and per_page; clamping happens in the application layer.
func pageRequest(r *http.Request) (model.PageRequest, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return model.PageRequest{}, err
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		return model.PageRequest{}, err
	}
	return model.PageRequest{Page: page, PerPage: perPage}, nil
}

func actorFrom(r *http.Request) (model.Actor, error) {
	actor, ok := utilsContext.GetActor(r.Context())
	if !ok || actor.ID == "" {
		return model.Actor{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return actor, nil
}
