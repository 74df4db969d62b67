package safegl

import (
	"errors"
	"fmt"

	"github.com/gogpu/safegl/driver"
)

// Errors returned by object creation and the binding protocol.
var (
	// ErrCreateFailed is returned when the driver could not allocate a
	// handle. The driver gives no reason for this.
	ErrCreateFailed = errors.New("safegl: object creation failed")

	// ErrNilObject is returned when binding or operating on a nil object.
	ErrNilObject = errors.New("safegl: object is nil")

	// ErrObjectDestroyed is returned when using an object after Destroy.
	ErrObjectDestroyed = errors.New("safegl: object has been destroyed")

	// ErrTargetBound is returned when binding to a target whose binder is
	// already lent out to a live binding.
	ErrTargetBound = errors.New("safegl: target already has a live binding")

	// ErrBindingReleased is returned when operating through a binding
	// after its Close.
	ErrBindingReleased = errors.New("safegl: binding has been released")

	// ErrLocationNotFound is returned by AttribLocation and
	// UniformLocation both when the name cannot be passed to the driver
	// and when the driver reports no active variable with that name. The
	// two causes are deliberately not distinguished.
	ErrLocationNotFound = errors.New("safegl: attrib or uniform location not found")

	// ErrTextureUnit is returned when a texture unit index is out of range.
	ErrTextureUnit = errors.New("safegl: texture unit out of range")
)

// Errors corresponding to the driver's queryable error codes. These only
// surface through the debug sanity check; the calls that can raise them
// have no room for an error result in their documented interface.
var (
	ErrInvalidEnum      = errors.New("safegl: driver reported INVALID_ENUM")
	ErrInvalidValue     = errors.New("safegl: driver reported INVALID_VALUE")
	ErrInvalidOperation = errors.New("safegl: driver reported INVALID_OPERATION")
	ErrOutOfMemory      = errors.New("safegl: driver reported OUT_OF_MEMORY")
)

// MessageError is a failure that carries driver-supplied text, such as a
// program link log. The text is never empty.
type MessageError struct {
	Text string
}

func (e *MessageError) Error() string {
	return "safegl: " + e.Text
}

// codeError maps a driver error code to its sentinel. Unknown codes get
// a descriptive wrapper around ErrInvalidOperation's family.
func codeError(code driver.Enum) error {
	switch code {
	case driver.INVALID_ENUM:
		return ErrInvalidEnum
	case driver.INVALID_VALUE:
		return ErrInvalidValue
	case driver.INVALID_OPERATION:
		return ErrInvalidOperation
	case driver.OUT_OF_MEMORY:
		return ErrOutOfMemory
	default:
		return fmt.Errorf("safegl: driver reported unknown error 0x%x", uint32(code))
	}
}
