package rangeslider

import "errors"

var (
	// ErrInvalidRange reports min >= max.
	ErrInvalidRange = errors.New("rangeslider: min must be less than max")
	// ErrInvalidStep reports a step that is not a positive number.
	ErrInvalidStep = errors.New("rangeslider: step must be positive")
	// ErrInvalidStick reports a malformed stick rule.
	ErrInvalidStick = errors.New("rangeslider: invalid stick rule")
	// ErrInvalidEventName reports an event name the scene cannot dispatch.
	ErrInvalidEventName = errors.New("rangeslider: invalid event name")
	// ErrInvalidBuffer reports a buffer that is not "N", "N%" or "Npx".
	ErrInvalidBuffer = errors.New("rangeslider: buffer must be XXpx or XX%")
	// ErrBufferDisabled reports a buffer update on a slider without a buffer node.
	ErrBufferDisabled = errors.New("rangeslider: buffer is disabled")
	// ErrDestroyed reports use of a destroyed slider.
	ErrDestroyed = errors.New("rangeslider: slider destroyed")
	// ErrNilInput reports a nil backing control.
	ErrNilInput = errors.New("rangeslider: nil input")
)
