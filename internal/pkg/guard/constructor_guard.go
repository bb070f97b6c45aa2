package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created through its constructor and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes the zero value detectable: only objects built via a constructor
// that calls NewConstructorGuard pass validation.
//
// Example usage:
//
//	type ContainerID struct {
//	    serial string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewContainerID(serial string) (ContainerID, error) {
//	    if serial == "" {
//	        return ContainerID{}, errors.New("serial is required")
//	    }
//	    return ContainerID{serial: serial, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ContainerID) Validate() error {
//	    return c.guard.Validate(ErrContainerIDIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for a constructed guard; for a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
