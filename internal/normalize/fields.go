package normalize

import (
	"time"

	"mailcorpus/internal/corpus"
	"mailcorpus/internal/mailstore"
)

// fields reads the non-identity attributes of one item.
type fields struct {
	n    *Normalizer
	kind corpus.Kind
	id   string
}

// read calls get and returns its value together with whether the default had
// to be used. Errors and panics from the accessor are logged at debug level
// and never escape.
func read[T any](f fields, name string, get func() (mailstore.Optional[T], error)) (v T, defaulted bool) {
	defer func() {
		if r := recover(); r != nil {
			f.n.logger.Debug("field accessor panicked, using default", "kind", f.kind, "id", f.id, "field", name, "panic", r)
			var zero T
			v, defaulted = zero, true
		}
	}()

	o, err := get()
	if err != nil {
		f.n.logger.Debug("field unreadable, using default", "kind", f.kind, "id", f.id, "field", name, "error", err)
		var zero T
		return zero, true
	}
	val, ok := o.Get()
	return val, !ok
}

func (f fields) text(name string, get func() (mailstore.Optional[mailstore.Text], error)) string {
	t, defaulted := read(f, name, get)
	if defaulted {
		return ""
	}
	return t.String()
}

func (f fields) body(name string, get func() (mailstore.Optional[mailstore.Text], error)) string {
	return f.n.truncate(f.text(name, get))
}

func (f fields) timestamp(name string, get func() (mailstore.Optional[time.Time], error)) string {
	t, defaulted := read(f, name, get)
	if defaulted {
		return ""
	}
	return FormatTime(t)
}

func (f fields) number(name string, get func() (mailstore.Optional[int64], error)) int64 {
	v, _ := read(f, name, get)
	return v
}

func (f fields) flag(name string, get func() (mailstore.Optional[bool], error)) bool {
	v, _ := read(f, name, get)
	return v
}
