package binding

// Descriptor is the classified form of one binding token. Hold and Tap are
// nil when the binding has no such parameter.
type Descriptor struct {
	Raw   string
	Kind  Kind
	Label string
	Hold  *string
	Tap   *string
	Class string
}

// Placeholder fills physical positions that have no binding.
func Placeholder() Descriptor {
	return Descriptor{Kind: KindNone, Class: ClassNone}
}

// HoldText returns the hold parameter or "".
func (d Descriptor) HoldText() string {
	if d.Hold == nil {
		return ""
	}
	return *d.Hold
}

// TapText returns the tap parameter or "".
func (d Descriptor) TapText() string {
	if d.Tap == nil {
		return ""
	}
	return *d.Tap
}

func strPtr(s string) *string {
	return &s
}
