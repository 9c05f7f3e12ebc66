package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"storefront/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// decodeJSON reads the body into dest and checks its shape. Both failures are
// reported as serrors.ErrInvalidInput.
func decodeJSON(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return serrors.Wrap(serrors.ErrInvalidInput, err, "invalid request body")
	}

	if err := validate.Struct(dest); err != nil {
		return validationError(err)
	}

	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return serrors.Wrap(serrors.ErrInvalidInput, err, "validation failed")
	}

	// the first failing field is enough to fix the request
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return serrors.With(serrors.ErrInvalidInput, "%s is required", fe.Field())
	case "gt":
		return serrors.With(serrors.ErrInvalidInput, "%s must be greater than %s", fe.Field(), fe.Param())
	case "min":
		return serrors.With(serrors.ErrInvalidInput, "%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return serrors.With(serrors.ErrInvalidInput, "%s must be at most %s", fe.Field(), fe.Param())
	default:
		return serrors.With(serrors.ErrInvalidInput, "%s is invalid", fe.Field())
	}
}

// idParam parses the {id} path segment.
func idParam[I ~int64](r *http.Request) (I, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrInvalidInput, "invalid id %q", raw)
	}

	return I(id), nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.With(serrors.ErrInvalidInput, "query parameter %s must be a boolean", name)
	}

	return v, nil
}
