package casting

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultRuntimePackage = "castruntime"

// GeneratorContext is the default Context. It qualifies runtime references
// with the runtime package name and numbers fresh identifiers per prefix.
//
// A GeneratorContext belongs to a single generation run and is not safe for
// concurrent use. Two contexts in the same naming state produce the same names.
type GeneratorContext struct {
	runtimePackage      string
	sessionTimeZoneTerm string
	namePrefix          string
	counters            map[string]int
}

var _ Context = (*GeneratorContext)(nil)

// ContextOption configures a GeneratorContext
type ContextOption func(*GeneratorContext)

// WithRuntimePackage sets the package name generated code uses to reach
// the runtime support package. An empty name emits unqualified references.
func WithRuntimePackage(name string) ContextOption {
	return func(c *GeneratorContext) {
		c.runtimePackage = name
	}
}

// WithSessionTimeZoneTerm sets the expression evaluating to the session time zone
func WithSessionTimeZoneTerm(term string) ContextOption {
	return func(c *GeneratorContext) {
		c.sessionTimeZoneTerm = term
	}
}

// WithNamePrefix prepends prefix to every allocated identifier
func WithNamePrefix(prefix string) ContextOption {
	return func(c *GeneratorContext) {
		c.namePrefix = prefix
	}
}

// NewGeneratorContext creates a context. Unless overridden, the session time
// zone is read from the generated function's ctx via the runtime package.
func NewGeneratorContext(opts ...ContextOption) *GeneratorContext {
	c := &GeneratorContext{
		runtimePackage: DefaultRuntimePackage,
		counters:       make(map[string]int),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sessionTimeZoneTerm == "" {
		c.sessionTimeZoneTerm = c.qualify("SessionTimeZone") + "(ctx)"
	}

	return c
}

func (c *GeneratorContext) SessionTimeZoneTerm() string {
	return c.sessionTimeZoneTerm
}

// NewName returns prefix followed by a counter, e.g. result0, result1
func (c *GeneratorContext) NewName(prefix string) string {
	name := c.namePrefix + prefix + strconv.Itoa(c.counters[prefix])
	c.counters[prefix]++

	return name
}

func (c *GeneratorContext) StaticField(name string) string {
	return c.qualify(name)
}

// StaticCall renders a call to a runtime function. Strings are emitted
// verbatim as terms; integers and booleans as literals. Any other argument
// type is a programming error and panics.
func (c *GeneratorContext) StaticCall(function string, args ...any) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = renderArgument(arg)
	}

	return c.qualify(function) + "(" + strings.Join(rendered, ", ") + ")"
}

func (c *GeneratorContext) qualify(name string) string {
	if c.runtimePackage == "" {
		return name
	}

	return c.runtimePackage + "." + name
}

func renderArgument(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		panic(fmt.Sprintf("unsupported static call argument type %T", arg))
	}
}
