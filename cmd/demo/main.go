// Command demo runs a small form-handling server showing how route
// schemas, custom validators and the session guard fit together.
package main

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/formspoon/formspoon"
	"github.com/formspoon/formspoon/pkg/config"
	"github.com/formspoon/formspoon/pkg/sanitizer"
	"github.com/formspoon/formspoon/pkg/validator"
)

type demoConfig struct {
	Addr          string `env:"DEMO_ADDR" envDefault:":8080"`
	SessionCookie string `env:"DEMO_SESSION_COOKIE" envDefault:"session"`
}

// userSelect is a custom validator: a Select restricted to known users,
// demonstrating how host code plugs its own rules into a schema.
type userSelect struct {
	users map[string]struct{}
}

func newUserSelect(users ...string) userSelect {
	set := make(map[string]struct{}, len(users))
	for _, u := range users {
		set[u] = struct{}{}
	}
	return userSelect{users: set}
}

func (v userSelect) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, &validator.ValidationError{Key: key, Value: value, Validator: v, Message: "value is not a string"}
	}
	if _, ok := v.users[s]; !ok {
		return nil, &validator.ValidationError{Key: key, Value: value, Validator: v, Message: "unknown user"}
	}
	return nil, nil
}

func (v userSelect) Populate(name string) map[string]any {
	users := make([]string, 0, len(v.users))
	for u := range v.users {
		users = append(users, u)
	}
	sort.Strings(users)
	return map[string]any{"name": name, "options": users}
}

func main() {
	cfg := config.MustLoad[demoConfig](".env")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace)
	schema := formspoon.Schema{
		"user": validator.With(newUserSelect("Fred", "George")),
		"bio": validator.With(
			validator.LambdaMap(func(value any) (any, error) {
				s, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("bio is not a string")
				}
				return normalize(s), nil
			}),
			validator.Length(-1, 200),
		),
		"subscribed": validator.With(validator.Bool()),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/login", func(w http.ResponseWriter, req *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     cfg.SessionCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: true,
		})
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	r.Group(func(r chi.Router) {
		r.Use(formspoon.RequireSession(cfg.SessionCookie))
		r.With(formspoon.ValidateForm(schema)).HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
			if values, ok := formspoon.FormValues(req.Context()); ok {
				fmt.Fprintf(w, "validated: user=%v subscribed=%v bio=%q\n",
					values["user"], values["subscribed"], values["bio"])
				return
			}
			renderForm(w, schema)
		})
	})

	logger.Info("demo server listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// renderForm builds a minimal HTML form from the schema's UI hints.
func renderForm(w http.ResponseWriter, schema formspoon.Schema) {
	hints := schema.Populate()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html><form method=\"POST\">")

	for _, hint := range hints["user"] {
		options, _ := hint["options"].([]string)
		fmt.Fprint(w, "<select required name=\"user\">")
		for _, opt := range options {
			escaped := html.EscapeString(opt)
			fmt.Fprintf(w, "<option value=%q>%s</option>", escaped, escaped)
		}
		fmt.Fprint(w, "</select>")
	}
	fmt.Fprint(w, `<input name="bio" placeholder="bio">`)
	fmt.Fprint(w, `<select name="subscribed"><option>yes</option><option>no</option></select>`)
	fmt.Fprint(w, `<input type="submit" value="submit"></form>`)
}
