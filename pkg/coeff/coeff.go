// Package coeff provides the coefficient types that power series are built
// over. A coefficient type describes a commutative ring with division: it
// knows its own additive and multiplicative identities and combines with
// other values of the same type. All implementations here are immutable
// values; arithmetic never mutates a receiver.
package coeff

// Ring is the capability set a coefficient type must provide. The type
// parameter is the implementing type itself, so arithmetic stays closed
// over T.
//
// Every method must be callable on the zero value of T: Zero and One act as
// constructors and may not inspect their receiver. Div panics when the
// divisor has no inverse, which for the rings in this package means the
// divisor is zero.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns the receiver plus x.
	Add(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Mul returns the receiver times x.
	Mul(x T) T
	// Div returns the receiver divided by x.
	Div(x T) T
	// Equal reports whether the receiver and x are the same ring element.
	Equal(x T) bool
}
