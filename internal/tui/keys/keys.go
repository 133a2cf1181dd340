package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice takes a struct (or a pointer to a struct) of fields of type
// key.Binding and returns the bindings as a slice, in field order.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	v := reflect.Indirect(reflect.ValueOf(t))
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		if b, ok := v.Field(i).Interface().(key.Binding); ok {
			bindings = append(bindings, b)
		}
	}
	return
}
