package audacity

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Entry describes one registered command: its user-visible name, the
// scripting name sent on the wire, a one-line description, and a constructor
// that returns a fresh instance carrying the command's default parameter
// values.
type Entry struct {
	Name   string // user-visible name (kebab-case, used as the CLI subcommand)
	Script string // scripting command name sent to Audacity
	Short  string // one-line description
	New    func() Command
}

var (
	ordered []Entry
	byName  = map[string]Entry{}
	byType  = map[reflect.Type]string{}
)

// register adds a command to the catalog. The scripting name defaults to the
// Go type name; the prototype's field values become the command's defaults.
func register(proto Command, short string) {
	registerAs(proto, typeName(proto), short)
}

// registerAs adds a command whose scripting name differs from its type name
// (e.g. Open dispatches as OpenProject2).
func registerAs(proto Command, script, short string) {
	t := reflect.TypeOf(proto)
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("audacity: command prototype must be a struct pointer, got %T", proto))
	}

	e := Entry{
		Name:   kebabCase(typeName(proto)),
		Script: script,
		Short:  short,
		New:    cloneFunc(proto),
	}
	if _, dup := byName[e.Name]; dup {
		panic("audacity: duplicate command " + e.Name)
	}

	ordered = append(ordered, e)
	byName[e.Name] = e
	byType[t.Elem()] = script

	// Touch the descriptors once so unsupported parameter types fail loudly
	// at init rather than on first use.
	FieldsOf(proto)
}

// cloneFunc returns a constructor producing shallow copies of the prototype.
// Parameters are scalars or pointers to scalars, and prototypes keep optional
// pointers nil, so a shallow copy is a full copy.
func cloneFunc(proto Command) func() Command {
	pv := reflect.ValueOf(proto).Elem()
	t := pv.Type()
	return func() Command {
		n := reflect.New(t)
		n.Elem().Set(pv)
		return n.Interface().(Command)
	}
}

func typeName(cmd Command) string {
	return reflect.Indirect(reflect.ValueOf(cmd)).Type().Name()
}

// ScriptName returns the scripting command name a command dispatches as.
// Unregistered types fall back to their Go type name.
func ScriptName(cmd Command) string {
	t := reflect.Indirect(reflect.ValueOf(cmd)).Type()
	if script, ok := byType[t]; ok {
		return script
	}
	return t.Name()
}

// All returns the command catalog in registration order.
func All() []Entry {
	out := make([]Entry, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup finds a catalog entry by its user-visible name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}

// Names returns the sorted user-visible names of all registered commands.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search returns catalog entries whose name or description contains the
// given substring, case-insensitively, in registration order.
func Search(substr string) []Entry {
	substr = strings.ToLower(substr)
	var out []Entry
	for _, e := range ordered {
		if strings.Contains(strings.ToLower(e.Name), substr) ||
			strings.Contains(strings.ToLower(e.Short), substr) {
			out = append(out, e)
		}
	}
	return out
}
