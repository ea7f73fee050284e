// Package option defines the Option descriptor for a single command-line
// flag and the ordered Collection that registers, resolves, and renders
// them. A Collection preserves insertion order for help output while
// keeping lookup by name or alias O(1).
package option

import (
	"fmt"
	"strings"
)

// Option describes a single declared command-line flag.
//
// When RequiresValue is true the flag consumes the token that follows it
// on the command line; when false, the flag's mere presence resolves its
// value to boolean true.
type Option struct {
	Name          string
	Aliases       []string
	RequiresValue bool
	Description   string

	// Value holds the resolved value after parsing: a string for
	// value-carrying flags, boolean true for presence flags, nil while
	// unset.
	Value any
}

// New constructs an Option with an unset value.
func New(name string, aliases []string, requiresValue bool, description string) *Option {
	return &Option{
		Name:          name,
		Aliases:       aliases,
		RequiresValue: requiresValue,
		Description:   description,
	}
}

// IsSet reports whether a value has been resolved for this option.
func (o *Option) IsSet() bool {
	return o.Value != nil
}

// BoolValue returns the resolved value as a boolean. It is false when the
// option is unset or resolved to anything other than boolean true.
func (o *Option) BoolValue() bool {
	v, ok := o.Value.(bool)
	return ok && v
}

// StringValue returns the resolved value as a string, or "" when the
// option is unset or resolved to a non-string.
func (o *Option) StringValue() string {
	v, _ := o.Value.(string)
	return v
}

// Synopsis returns the display form of the option's flag spellings, the
// canonical name first, e.g. "--name, -n <value>". Single-character
// spellings get one dash, longer ones two.
func (o *Option) Synopsis() string {
	forms := make([]string, 0, len(o.Aliases)+1)
	for _, name := range append([]string{o.Name}, o.Aliases...) {
		forms = append(forms, dashed(name))
	}
	s := strings.Join(forms, ", ")
	if o.RequiresValue {
		s += " <value>"
	}
	return s
}

func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// DuplicateError reports a registration whose name or alias is already
// taken within a Collection.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("option %q is already registered", e.Name)
}

// NotFoundError reports a lookup for an identifier no registered option
// answers to.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no option registered for %q", e.Query)
}
