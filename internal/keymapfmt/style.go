package keymapfmt

import (
	"github.com/fatih/color"

	"keyzone/internal/binding"
)

// classColors maps descriptor classes to terminal colours. Regular keys are
// left uncoloured.
var classColors = map[string][]color.Attribute{
	binding.ClassLayer:     {color.FgCyan},
	binding.ClassLayerTap:  {color.FgCyan, color.Bold},
	binding.ClassHRM:       {color.FgMagenta},
	binding.ClassTrans:     {color.Faint},
	binding.ClassNone:      {color.Faint},
	binding.ClassSystem:    {color.FgRed, color.Bold},
	binding.ClassBluetooth: {color.FgBlue},
	binding.ClassRGB:       {color.FgYellow},
	binding.ClassOutput:    {color.FgGreen},
	binding.ClassMacro:     {color.FgHiMagenta},
	binding.ClassMagic:     {color.FgHiYellow},
	binding.ClassBehavior:  {color.FgHiRed},
}

// LegendEntry names one descriptor class for the renderers' legends.
type LegendEntry struct {
	Class string
	Title string
}

// Legend lists the classes in the order the legends show them. Regular keys
// come first and carry no colour.
var Legend = []LegendEntry{
	{binding.ClassRegular, "Regular Key"},
	{binding.ClassHRM, "Home Row Mod"},
	{binding.ClassLayer, "Layer"},
	{binding.ClassLayerTap, "Layer Tap"},
	{binding.ClassMacro, "Macro"},
	{binding.ClassBluetooth, "Bluetooth"},
	{binding.ClassRGB, "RGB"},
	{binding.ClassOutput, "Output"},
	{binding.ClassMagic, "Magic"},
	{binding.ClassSystem, "System"},
	{binding.ClassTrans, "Transparent"},
	{binding.ClassNone, "None"},
	{binding.ClassBehavior, "Other Behavior"},
}

func paint(on bool, class, s string) string {
	attrs, ok := classColors[class]
	if !on || !ok {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
