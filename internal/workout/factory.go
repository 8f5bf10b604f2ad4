package workout

import (
	"errors"
	"fmt"
)

// Workout type codes emitted by tracking devices.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnknownTraining indicates a type code outside the supported set.
	ErrUnknownTraining = errors.New("unknown training type")
	// ErrArgumentCount indicates a sensor package whose value count does not
	// match the arity of the selected training type.
	ErrArgumentCount = errors.New("unexpected sensor value count")
	// ErrInvalidData indicates sensor values outside their valid range.
	ErrInvalidData = errors.New("invalid sensor data")
)

// New maps a workout type code to a constructed calculator, binding the raw
// sensor values positionally to the fields of the selected training type.
func New(code string, data []float64) (Training, error) {
	switch code {
	case CodeSwimming:
		if err := checkArity(code, data, 5); err != nil {
			return nil, err
		}
		swm := Swimming{
			session: newSession(data),
			PoolLen: int(data[3]),
			Laps:    int(data[4]),
		}
		if err := swm.validate(); err != nil {
			return nil, err
		}
		if swm.PoolLen <= 0 {
			return nil, fmt.Errorf("%w: pool length must be positive, got %d", ErrInvalidData, swm.PoolLen)
		}
		if swm.Laps < 0 {
			return nil, fmt.Errorf("%w: negative lap count %d", ErrInvalidData, swm.Laps)
		}
		return swm, nil
	case CodeRunning:
		if err := checkArity(code, data, 3); err != nil {
			return nil, err
		}
		run := Running{session: newSession(data)}
		if err := run.validate(); err != nil {
			return nil, err
		}
		return run, nil
	case CodeWalking:
		if err := checkArity(code, data, 4); err != nil {
			return nil, err
		}
		wlk := SportsWalking{
			session: newSession(data),
			Height:  data[3],
		}
		if err := wlk.validate(); err != nil {
			return nil, err
		}
		if wlk.Height <= 0 {
			return nil, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidData, wlk.Height)
		}
		return wlk, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraining, code)
	}
}

func checkArity(code string, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s expects %d values, got %d", ErrArgumentCount, code, want, len(data))
	}
	return nil
}

func newSession(data []float64) session {
	return session{
		Action:   int(data[0]),
		Duration: data[1],
		Weight:   data[2],
	}
}

// validate rejects readings that would make the formulas divide by zero or
// produce negative metrics.
func (s session) validate() error {
	if s.Action < 0 {
		return fmt.Errorf("%w: negative action count %d", ErrInvalidData, s.Action)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidData, s.Duration)
	}
	if s.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidData, s.Weight)
	}
	return nil
}
