package validation

import (
	"reflect"
	"strings"
)

// Changed lists the JSON names of the fields that differ between two values
// of the same struct type. Used to clear errors on edited fields.
func Changed(before, after interface{}) []string {
	b := reflect.Indirect(reflect.ValueOf(before))
	a := reflect.Indirect(reflect.ValueOf(after))
	if b.Type() != a.Type() || b.Kind() != reflect.Struct {
		return nil
	}

	var fields []string
	t := b.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !reflect.DeepEqual(b.Field(i).Interface(), a.Field(i).Interface()) {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = f.Name
			}
			fields = append(fields, name)
		}
	}
	return fields
}

// ClearChanged drops the errors of every field that differs between before and after
func (fe FieldErrors) ClearChanged(before, after interface{}) {
	for _, field := range Changed(before, after) {
		fe.Clear(field)
	}
}
