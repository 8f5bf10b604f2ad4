// Package workout implements the summary calculations for the supported
// training types: running, sports walking and swimming.
package workout

// Training is the calculation contract implemented by every workout type.
// The set of implementations is closed: constructing one goes through New.
type Training interface {
	// Name returns the display name used in the report line.
	Name() string
	// Distance returns the covered distance in kilometres.
	Distance() float64
	// MeanSpeed returns the average speed over the whole session in km/h.
	MeanSpeed() float64
	// Calories returns the energy spent during the session in kcal.
	Calories() float64
	// Summary assembles the immutable report record for the session.
	Summary() Record

	durationHours() float64
}

const (
	metersInKm = 1000.0
	minInHour  = 60.0

	stepLenM   = 0.65 // one step, running and walking
	strokeLenM = 1.38 // one stroke, swimming
)

// session holds the sensor readings shared by every training type.
type session struct {
	Action   int     // steps or strokes counted by the device
	Duration float64 // session duration, hours
	Weight   float64 // athlete weight, kg
}

func (s session) distance(stepLen float64) float64 {
	return float64(s.Action) * stepLen / metersInKm
}

func (s session) meanSpeed(stepLen float64) float64 {
	return s.distance(stepLen) / s.Duration
}

func (s session) durationHours() float64 { return s.Duration }

// Running coefficients of the calorie formula.
const (
	runSpeedMultiplier = 18.0
	runSpeedShift      = 1.79
)

// Running is a running session.
type Running struct {
	session
}

func (r Running) Name() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(stepLenM) }

func (r Running) MeanSpeed() float64 { return r.meanSpeed(stepLenM) }

func (r Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() + runSpeedShift) *
		r.Weight / metersInKm * (r.Duration * minInHour)
}

func (r Running) Summary() Record { return newRecord(r) }

// SportsWalking coefficients of the calorie formula.
const (
	walkWeightCoeff = 0.035
	walkSpeedCoeff  = 0.029
	kmhToMs         = 0.278
	cmInM           = 100.0
)

// SportsWalking is a sports walking session.
type SportsWalking struct {
	session
	Height float64 // athlete height, cm
}

func (w SportsWalking) Name() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return w.distance(stepLenM) }

func (w SportsWalking) MeanSpeed() float64 { return w.meanSpeed(stepLenM) }

func (w SportsWalking) Calories() float64 {
	speedMs := w.MeanSpeed() * kmhToMs
	return (walkWeightCoeff*w.Weight +
		speedMs*speedMs/(w.Height/cmInM)*walkSpeedCoeff*w.Weight) *
		(w.Duration * minInHour)
}

func (w SportsWalking) Summary() Record { return newRecord(w) }

// Swimming coefficients of the calorie formula.
const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

// Swimming is a swimming session. Distance is counted in strokes, mean speed
// comes from the pool geometry rather than the stroke count.
type Swimming struct {
	session
	PoolLen int // pool length, metres
	Laps    int // times the pool was crossed
}

func (s Swimming) Name() string { return "Swimming" }

func (s Swimming) Distance() float64 { return s.distance(strokeLenM) }

func (s Swimming) MeanSpeed() float64 {
	return float64(s.PoolLen*s.Laps) / metersInKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) Summary() Record { return newRecord(s) }
