package launcher

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/aqpico/util"
)

const SETTINGS = "settings"

var ErrUnknownApp = errors.New("unknown app")

// App is a mini-application. Run owns the device until it returns.
type App interface {
	Run() error
}

type AppFunc func() error

func (f AppFunc) Run() error {
	return f()
}

// Registry maps names to apps and keeps their registration order.
type Registry struct {
	names []string
	apps  map[string]App
}

func NewRegistry() *Registry {
	return &Registry{apps: map[string]App{}}
}

// Register adds app under name. Registering a name again replaces the app
// and keeps its position.
func (r *Registry) Register(name string, app App) {
	if _, ok := r.apps[name]; !ok {
		r.names = append(r.names, name)
	}
	r.apps[name] = app
}

// ListAvailable returns the app names in registration order with the
// settings app, if any, moved to the end.
func (r *Registry) ListAvailable() []string {
	ret := make([]string, 0, len(r.names))
	hasSettings := false
	for _, name := range r.names {
		if name == SETTINGS {
			hasSettings = true
			continue
		}
		ret = append(ret, name)
	}
	if hasSettings {
		ret = append(ret, SETTINGS)
	}
	return ret
}

// Launch runs the named app. A panic inside the app is returned as an
// error.
func (r *Registry) Launch(name string) (err error) {
	app, ok := r.apps[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownApp, name)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	util.Trace("launcher: launching %s", name)
	return app.Run()
}
