package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by the controller.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterSnapshot captures the current set of values exposed on the
// control bar.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the control bar. Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step int

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Clamp bounds v to the control's limits.
func (c ParameterControl) Clamp(v int) int {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows control bar interactions to update integer
// parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
