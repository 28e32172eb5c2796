package route

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

var (
	ErrNotStruct      = errors.New("route: params must be a non-nil pointer to a struct")
	ErrFieldNotString = errors.New("route: path field must be a string")
	ErrMissingTag     = errors.New("route: exported field has no path tag")
)

// Decode copies path values from r into the string fields of dst that carry
// a `path:"name"` tag. Fields tagged `path:"-"` and unexported fields are
// skipped. Values are copied verbatim; a missing wildcard yields "".
func Decode(r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}
	sv := rv.Elem()
	st := sv.Type()
	for i := range st.NumField() {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := f.Tag.Lookup("path")
		if !ok || name == "" {
			return fmt.Errorf("%w: %s", ErrMissingTag, f.Name)
		}
		if name == "-" {
			continue
		}
		if f.Type.Kind() != reflect.String {
			return fmt.Errorf("%w: %s", ErrFieldNotString, f.Name)
		}
		sv.Field(i).SetString(r.PathValue(name))
	}
	return nil
}

// FromRequest returns a Deferred that settles with the decoded params of r.
// Decoding runs on its own goroutine; a decode error becomes the rejection.
func FromRequest[P any](r *http.Request) *Deferred[P] {
	d := NewDeferred[P]()
	go func() {
		var p P
		if err := Decode(r, &p); err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(p)
	}()
	return d
}
