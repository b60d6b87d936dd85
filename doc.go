// Package formspoon attaches declarative form validation to HTTP
// routes. A route declares a Schema — field names mapped to chains of
// validators from pkg/validator — and the ValidateForm middleware
// parses, validates and transforms submitted values before the handler
// runs, storing the result in the request context.
//
//	schema := formspoon.Schema{
//	    "email":  validator.With(validator.Email("")),
//	    "age":    validator.With(validator.Regex(`^[0-9]{1,3}$`)),
//	    "active": validator.With(validator.Bool()),
//	}
//
//	r := chi.NewRouter()
//	r.With(formspoon.ValidateForm(schema)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	    values, _ := formspoon.FormValues(r.Context())
//	    // values["active"] is a bool here
//	})
//
// Validation failures never reach the handler; they are rendered by
// RenderError as 4xx responses with the failure message as the body.
// All failures belong to one error family rooted at validator.ErrForm,
// so custom boundaries can intercept them with errors.Is.
package formspoon
