package netcomponents

// Velocity components are optional on the wire: the server omits a component
// whose change since the previous tick is below its delta threshold.

// BackfillVelocity returns a resolved component. An omitted value is taken
// from prev, and falls back to zero when there is no prior value.
func BackfillVelocity(v, prev *float64) *float64 {
	if v != nil {
		out := *v
		return &out
	}
	out := 0.0
	if prev != nil {
		out = *prev
	}
	return &out
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
