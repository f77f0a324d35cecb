package audacity

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies the value type of a command parameter.
type Kind int

const (
	// KindString is a free-form text parameter.
	KindString Kind = iota
	// KindInt is an integer parameter.
	KindInt
	// KindFloat is a floating point parameter.
	KindFloat
	// KindBool is a boolean parameter, serialized as 1/0.
	KindBool
	// KindEnum is a string parameter restricted to a fixed value set.
	KindEnum
)

// Param is a single serialized parameter of a command.
type Param struct {
	Name  string
	Value string
}

// Field describes one parameter of a command: its wire name, CLI flag name,
// value kind and, for enums, the allowed values. Field descriptors are used
// both by the request serializer and by the CLI flag generator.
type Field struct {
	Name     string   // wire parameter name
	Flag     string   // CLI flag name (kebab-case)
	Kind     Kind
	Optional bool     // pointer field; omitted from the request when nil
	Enum     []string // allowed values when Kind == KindEnum

	val reflect.Value
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// FieldsOf returns the parameter descriptors of a command, in declaration
// order. cmd must be a pointer to a catalog struct (as returned by
// Entry.New) for the descriptors to be settable.
func FieldsOf(cmd Command) []Field {
	v := reflect.Indirect(reflect.ValueOf(cmd))
	t := v.Type()

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		f := Field{
			Name: sf.Name,
			Flag: kebabCase(sf.Name),
			val:  v.Field(i),
		}
		if tag := sf.Tag.Get("audacity"); tag != "" {
			f.Name = tag
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			f.Optional = true
			ft = ft.Elem()
		}

		switch {
		case ft.Implements(enumType):
			f.Kind = KindEnum
			f.Enum = reflect.New(ft).Elem().Interface().(Enum).EnumValues()
		case ft.Kind() == reflect.String:
			f.Kind = KindString
		case ft.Kind() == reflect.Int:
			f.Kind = KindInt
		case ft.Kind() == reflect.Float64:
			f.Kind = KindFloat
		case ft.Kind() == reflect.Bool:
			f.Kind = KindBool
		default:
			panic(fmt.Sprintf("audacity: unsupported parameter type %s.%s %s",
				t.Name(), sf.Name, sf.Type))
		}

		fields = append(fields, f)
	}
	return fields
}

// IsSet reports whether the field currently carries a value. Non-optional
// fields are always set; optional fields are set when non-nil.
func (f Field) IsSet() bool {
	return !f.Optional || !f.val.IsNil()
}

// Value returns the field's current value serialized to its wire form.
// Calling Value on an unset optional field returns the empty string.
func (f Field) Value() string {
	v := f.val
	if f.Optional {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch f.Kind {
	case KindBool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return v.String()
	}
}

// Set assigns a value to the field from its textual form, allocating the
// pointer for optional fields. Enum membership is not checked here; that
// happens during Format.
func (f Field) Set(s string) error {
	v := f.val
	if f.Optional {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	switch f.Kind {
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid bool %q for %s", s, f.Name)
		}
		v.SetBool(b)
	case KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int %q for %s", s, f.Name)
		}
		v.SetInt(i)
	case KindFloat:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q for %s", s, f.Name)
		}
		v.SetFloat(x)
	default:
		v.SetString(s)
	}
	return nil
}

// Params serializes the set parameters of a command, in declaration order.
// Unset optional parameters and zero-valued enums are omitted. Enum
// parameters outside their allowed set return a *ValidationError.
func Params(cmd Command) ([]Param, error) {
	fields := FieldsOf(cmd)
	params := make([]Param, 0, len(fields))
	for _, f := range fields {
		if !f.IsSet() {
			continue
		}
		value := f.Value()
		// A zero-valued enum means "not chosen"; leave it out and let
		// Audacity apply its own default.
		if f.Kind == KindEnum && value == "" && !f.Optional {
			continue
		}
		if f.Kind == KindEnum && !contains(f.Enum, value) {
			return nil, &ValidationError{
				Command: ScriptName(cmd),
				Param:   f.Name,
				Value:   value,
				Allowed: f.Enum,
			}
		}
		params = append(params, Param{Name: f.Name, Value: value})
	}
	return params, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// kebabCase converts a CamelCase identifier to kebab-case. Runs of capitals
// are treated as a single acronym: "ExportMIDI" becomes "export-midi".
func kebabCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			boundary := i > 0 && (isLower(runes[i-1]) ||
				(i+1 < len(runes) && isLower(runes[i+1]) && isUpper(runes[i-1])))
			if boundary {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		if r == '_' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
