package anim

// Value is an animatable scalar property. A nil Value behaves as an unbound
// handle: reads return zero and writes are dropped.
type Value struct {
	v float64
}

// NewValue returns a property initialised to v.
func NewValue(v float64) *Value {
	return &Value{v: v}
}

// Get returns the current value.
func (p *Value) Get() float64 {
	if p == nil {
		return 0
	}
	return p.v
}

// Set writes the value immediately.
func (p *Value) Set(v float64) {
	if p == nil {
		return
	}
	p.v = v
}

// SetAll writes v to every property.
func SetAll(props []*Value, v float64) {
	for _, p := range props {
		p.Set(v)
	}
}
