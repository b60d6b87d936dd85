package formspoon

import (
	"maps"
	"net/http"
	"sort"

	"github.com/formspoon/formspoon/pkg/validator"
)

// Schema maps a field name to the validator chain declared for it at
// route-registration time.
type Schema map[string]validator.Set

// Validate runs every declared field against the submitted data and
// returns a copy of the data with transformed values applied. Fields
// are validated independently: a failure in one field never stops the
// others, so the caller gets the complete picture in one pass. Within
// a field the chain is fail-fast and only the first failure is
// recorded. A declared field absent from the data is reported as a
// missing-key failure.
func (s Schema) Validate(data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(data))
	maps.Copy(out, data)

	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := NewFieldErrors()
	for _, field := range fields {
		value, ok := data[field]
		if !ok {
			errs.Add(field, (&validator.FormKeyError{Key: field}).Error())
			continue
		}

		res, changed, err := validator.Apply(s[field], field, value)
		if err != nil {
			errs.Add(field, err.Error())
			continue
		}
		if changed {
			out[field] = res
		}
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return out, nil
}

// Populate collects UI-hint metadata for every declared field, keyed by
// field name, for rendering form constraints into templates.
func (s Schema) Populate() map[string][]map[string]any {
	out := make(map[string][]map[string]any, len(s))
	for field, set := range s {
		hints := make([]map[string]any, len(set))
		for i, v := range set {
			hints[i] = v.Populate(field)
		}
		out[field] = hints
	}
	return out
}

// ParseForm extracts submitted form fields from the request body into
// the value tree Schema.Validate consumes: a single-valued field
// becomes a string, a repeated field becomes a list.
func ParseForm(r *http.Request) (map[string]any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	data := make(map[string]any, len(r.PostForm))
	for field, values := range r.PostForm {
		if len(values) == 1 {
			data[field] = values[0]
			continue
		}
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		data[field] = items
	}
	return data, nil
}
