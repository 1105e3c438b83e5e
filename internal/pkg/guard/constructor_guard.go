// Package guard holds the constructor guard embedded by commands, queries and
// domain objects of the procurement service.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created through its constructor. A zero
// value guard fails validation, so a struct literal that skipped the
// constructor (and its checks) is detected the first time it is used.
//
// Example:
//
//	var ErrPostGoodsReceiptCommandIsNotConstructed = errors.New("...")
//
//	type PostGoodsReceiptCommand struct {
//	    poNo  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c PostGoodsReceiptCommand) Validate() error {
//	    return c.guard.Validate(ErrPostGoodsReceiptCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
