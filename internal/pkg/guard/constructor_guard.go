// Package guard implements the constructor-guard pattern used by domain
// objects and commands to reject zero-value instances that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil validation error is passed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// the zero value detectably invalid: only constructors call
// NewConstructorGuard, so any instance created by plain struct literal fails
// Validate.
//
// Example:
//
//	type TickCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTickCommand() TickCommand {
//	    return TickCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c TickCommand) Validate() error {
//	    return c.guard.Validate(ErrTickCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. This should be called only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
