package formspoon

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/formspoon/formspoon/pkg/validator"
)

type formContextKey struct{}

// ValidateForm returns middleware that parses the request body on
// form-submitting methods, validates it against the schema and stores
// the validated (possibly transformed) values in the request context.
// Validation failures short-circuit to RenderError; non-form methods
// pass through untouched so the same route can serve GET renders.
func ValidateForm(schema Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				next.ServeHTTP(w, r)
				return
			}

			data, err := ParseForm(r)
			if err != nil {
				RenderError(w, r, err)
				return
			}

			validated, err := schema.Validate(data)
			if err != nil {
				RenderError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), formContextKey{}, validated)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FormValues returns the validated form stored by ValidateForm, or
// false when the request carried no validated form.
func FormValues(ctx context.Context) (map[string]any, bool) {
	values, ok := ctx.Value(formContextKey{}).(map[string]any)
	return values, ok
}

// RequireSession returns middleware that rejects requests without a
// well-formed session token in the named cookie. The token must be a
// UUID; anything else is treated as an invalid session and rendered
// through the shared error path.
func RequireSession(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || uuid.Validate(cookie.Value) != nil {
				RenderError(w, r, validator.ErrInvalidSession)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RenderError maps an error to an HTTP response: invalid sessions to
// 401, any other form-error kind to 400, everything else to 500. The
// response body is the rendered error message; client errors are
// logged at warn, server errors at error.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, validator.ErrInvalidSession):
		status = http.StatusUnauthorized
	case errors.Is(err, validator.ErrForm):
		status = http.StatusBadRequest
	}

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	slog.Default().LogAttrs(r.Context(), level, "form request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	http.Error(w, err.Error(), status)
}
