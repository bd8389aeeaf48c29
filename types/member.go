// Package types defines the member capability interfaces, query descriptors
// and error types shared by the keyset collection core and its collaborators.
package types

// Identified is implemented by members that carry a stable identity. A
// member's ID is used as its collection key; members without this capability
// are stored under positional keys instead.
type Identified interface {
	// ID returns a stable, non-empty identity for the member.
	ID() string
}

// Unwrapper is implemented by boxed scalar values: wrapper types that hold a
// raw underlying value (e.g. a content-field abstraction). The attribute
// accessor unwraps these transparently so filters, sorts and grouping see the
// raw value, never the wrapper.
type Unwrapper interface {
	Unwrap() any
}

// AttributeGetter lets a member resolve named attributes itself, bypassing
// the reflection-based lookup.
type AttributeGetter interface {
	Attribute(name string) any
}

// ArrayConvertible is implemented by members that can serialize themselves to
// a plain structure. Collection.ToArray uses it as the default per-member
// mapping.
type ArrayConvertible interface {
	ToArray() any
}
