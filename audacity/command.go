package audacity

import (
	"strings"
)

// Command is implemented by every scripting command in the catalog. A command
// is a plain struct whose exported fields are its parameters; embedding
// scriptable provides the marker method. Use the catalog types directly:
//
//	cmd := &audacity.SetLabel{Label: 2, Text: audacity.String("chorus")}
type Command interface {
	command()
}

// scriptable is embedded by every catalog type to mark it as a Command.
type scriptable struct{}

func (scriptable) command() {}

// Enum is implemented by string-backed parameter types that accept a fixed
// set of values. Values outside the set fail validation before dispatch.
type Enum interface {
	EnumValues() []string
}

// Validator is implemented by commands with checks beyond per-parameter
// validation. Validate runs during Format, before anything hits the pipe.
type Validator interface {
	Validate() error
}

// Format serializes a command into the textual request form understood by
// the scripting module:
//
//	CommandName: Param1="Value1" Param2="Value2"
//
// Optional (pointer) parameters that are nil are omitted. Bools serialize as
// 1/0. Enum parameters are validated against their allowed values; a bad
// value returns a *ValidationError.
func Format(cmd Command) (string, error) {
	if v, ok := cmd.(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	params, err := Params(cmd)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(ScriptName(cmd))
	b.WriteString(":")
	for _, p := range params {
		b.WriteString(` `)
		b.WriteString(p.Name)
		b.WriteString(`="`)
		b.WriteString(escapeValue(p.Value))
		b.WriteString(`"`)
	}
	return b.String(), nil
}

// escapeValue escapes characters that would break the quoted request form.
func escapeValue(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return r.Replace(s)
}

// Helpers for filling optional command parameters.

// String returns a pointer to s, for optional string parameters.
func String(s string) *string { return &s }

// Int returns a pointer to i, for optional int parameters.
func Int(i int) *int { return &i }

// Float returns a pointer to f, for optional float parameters.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b, for optional bool parameters.
func Bool(b bool) *bool { return &b }
