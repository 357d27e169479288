package binding

// Kind is the semantic category of a key binding.
type Kind uint8

const (
	KindUnclassified Kind = iota
	KindKey
	KindLayerMomentary
	KindLayerToggle
	KindLayerGoto
	KindLayerTap
	KindHoldTap
	KindTransparent
	KindNone
	KindSystem
	KindBluetooth
	KindRGB
	KindOutput
	KindMacro
	KindMagic
)

var kindNames = [...]string{
	KindUnclassified:   "unclassified",
	KindKey:            "key",
	KindLayerMomentary: "layer_momentary",
	KindLayerToggle:    "layer_toggle",
	KindLayerGoto:      "layer_goto",
	KindLayerTap:       "layer_tap",
	KindHoldTap:        "hold_tap",
	KindTransparent:    "transparent",
	KindNone:           "none",
	KindSystem:         "system",
	KindBluetooth:      "bluetooth",
	KindRGB:            "rgb",
	KindOutput:         "output",
	KindMacro:          "macro",
	KindMagic:          "magic",
}

// String returns the snake_case form used in exported documents.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unclassified"
}

// IsLayer reports whether the binding switches layers in any way.
func (k Kind) IsLayer() bool {
	switch k {
	case KindLayerMomentary, KindLayerToggle, KindLayerGoto, KindLayerTap:
		return true
	}
	return false
}

// Style classes attached to descriptors for renderers.
const (
	ClassRegular   = "regular"
	ClassLayer     = "layer"
	ClassLayerTap  = "layer_tap"
	ClassHRM       = "hrm"
	ClassTrans     = "trans"
	ClassNone      = "none"
	ClassSystem    = "system"
	ClassBluetooth = "bluetooth"
	ClassRGB       = "rgb"
	ClassOutput    = "output"
	ClassMacro     = "macro"
	ClassMagic     = "magic"
	ClassBehavior  = "behavior"
)
