package sleepcycle

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidLatency    = errors.New("invalid fall-asleep latency")
	ErrUnknownPolicy     = errors.New("unknown window policy")
	ErrUnknownFormat     = errors.New("unknown time format")
)

// Input names used in InputError.
const (
	FieldBedtime           = "bedtime"
	FieldFallAsleepMinutes = "fall_asleep_minutes"
	FieldWakeTime          = "wake_time"
	FieldPolicy            = "policy"
	FieldTimeFormat        = "time_format"
)

// InputError ties a rejected value to the input it came from.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(field string, err error) error {
	return &InputError{Field: field, Err: err}
}
