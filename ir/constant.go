package ir

import (
	"fmt"
	"reflect"

	"github.com/hassan/ssair/irtype"
)

// Constant is an immutable literal value: it is never named, never owned by
// a block, and carries no side effects. The spec flags a mutable constant
// variant as non-canonical; this package only implements the immutable one.
type Constant struct {
	baseValue
	payload interface{}
}

// NewConstant builds a Constant of the given type wrapping payload (an int,
// float64, bool, or string — whatever the type's domain expects).
func NewConstant(typ irtype.Type, payload interface{}) *Constant {
	return &Constant{baseValue: baseValue{typ: typ}, payload: payload}
}

func (c *Constant) IsConstant() bool { return true }
func (c *Constant) Payload() interface{} { return c.payload }

// Equal reports whether two constants have the same type and payload. Two
// distinct *Constant instances with equal type and payload are
// interchangeable but are NOT pointer-identical; callers that need a
// canonical instance (for deduplication) must do that themselves.
func (c *Constant) Equal(other *Constant) bool {
	return c.Type().Equal(other.Type()) && reflect.DeepEqual(c.payload, other.payload)
}

func (c *Constant) String() string {
	return fmt.Sprintf("%s %v", c.Type().String(), c.payload)
}
