package binding

import (
	"strings"

	"keyzone/internal/label"
)

// homeRowMods are the hold-tap behaviors rendered as "<tap>/<mod>".
var homeRowMods = map[string]struct{}{
	"hm": {}, "hml": {}, "hmr": {}, "mt": {},
	"hmk_left_pinky": {}, "hmk_left_ring": {}, "hmk_left_middle": {}, "hmk_left_index": {},
	"hmk_right_pinky": {}, "hmk_right_ring": {}, "hmk_right_middle": {}, "hmk_right_index": {},
	"hmk_left_thumb_middle_inner": {},
}

// Classify turns one binding token into a Descriptor. It accepts any input:
// unknown behaviors come back as KindUnclassified with the behavior name as
// label.
func Classify(tok string) Descriptor {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(tok), string(Sigil)))
	raw := strings.Join(fields, " ")

	var name, p1, p2 string
	var has1, has2 bool
	if len(fields) > 0 {
		name = fields[0]
	}
	if len(fields) > 1 {
		p1, has1 = fields[1], true
	}
	if len(fields) > 2 {
		p2, has2 = fields[2], true
	}

	d := Descriptor{Raw: raw}

	switch name {
	case "trans":
		return d.with(KindTransparent, "▽", ClassTrans)
	case "none":
		return d.with(KindNone, "", ClassNone)
	case "bootloader":
		return d.with(KindSystem, "BOOT", ClassSystem)
	case "sys_reset":
		return d.with(KindSystem, "RESET", ClassSystem)
	case "magic":
		return d.with(KindMagic, "MAGIC", ClassMagic)
	}

	if d, ok := classifyLayer(d, name, p1, has1, p2, has2); ok {
		return d
	}

	if _, ok := homeRowMods[name]; ok || strings.HasPrefix(name, "hmk_") {
		if has1 {
			d.Hold = strPtr(p1)
		}
		if has2 {
			d.Tap = strPtr(p2)
		}
		if !has1 || !has2 {
			return d.with(KindHoldTap, "HRM", ClassHRM)
		}
		return d.with(KindHoldTap, label.Format(p2)+"/"+label.ShortModifier(p1), ClassHRM)
	}

	switch {
	case strings.HasPrefix(name, "bt"):
		return d.with(KindBluetooth, bluetoothLabel(name, p1, has1, p2, has2), ClassBluetooth)
	case strings.HasPrefix(name, "rgb"):
		cmd := strings.ReplaceAll(p1, "RGB_", "")
		if cmd == "" {
			cmd = "RGB"
		}
		return d.with(KindRGB, cmd, ClassRGB)
	case strings.HasPrefix(name, "macro"):
		return d.with(KindMacro, "MACRO", ClassMacro)
	case strings.HasPrefix(name, "magic"):
		return d.with(KindMagic, "MAGIC", ClassMagic)
	case name == "out" || strings.HasPrefix(name, "out_"):
		target := p1
		if !has1 {
			target = strings.ToUpper(strings.TrimPrefix(name, "out_"))
			if name == "out" {
				target = ""
			}
		}
		target = strings.ReplaceAll(target, "OUT_", "")
		if target == "" {
			target = "OUT"
		}
		return d.with(KindOutput, target, ClassOutput)
	case name == "kp":
		if !has1 {
			return d.with(KindKey, "kp", ClassRegular)
		}
		d.Tap = strPtr(p1)
		return d.with(KindKey, label.Format(p1), ClassRegular)
	}

	if name == "" {
		return d.with(KindUnclassified, "?", ClassBehavior)
	}
	return d.with(KindUnclassified, name, ClassBehavior)
}

func (d Descriptor) with(k Kind, lbl, class string) Descriptor {
	d.Kind = k
	d.Label = lbl
	d.Class = class
	return d
}

func classifyLayer(d Descriptor, name, p1 string, has1 bool, p2 string, has2 bool) (Descriptor, bool) {
	var kind Kind
	var tag, class string
	switch name {
	case "mo":
		kind, tag, class = KindLayerMomentary, "MO", ClassLayer
	case "tog":
		kind, tag, class = KindLayerToggle, "TG", ClassLayer
	case "to":
		kind, tag, class = KindLayerGoto, "TO", ClassLayer
	case "lt", "lt_thumb":
		kind, tag, class = KindLayerTap, "LT", ClassLayerTap
	case "lower", "raise":
		kind, tag, class = KindLayerTap, strings.ToUpper(name), ClassLayerTap
	default:
		return d, false
	}

	if has1 {
		d.Hold = strPtr(p1)
	}
	if has2 {
		d.Tap = strPtr(p2)
	}

	switch {
	case name == "lower" || name == "raise" || !has1:
		return d.with(kind, tag, class), true
	case kind == KindLayerTap && has2:
		return d.with(kind, label.Format(p2)+"/L"+p1, class), true
	}
	return d.with(kind, tag+" "+p1, class), true
}

func bluetoothLabel(name, p1 string, has1 bool, p2 string, has2 bool) string {
	if !has1 {
		suffix := strings.TrimLeft(strings.TrimPrefix(name, "bt"), "_")
		if suffix == "" {
			return "BT"
		}
		return "BT " + strings.ToUpper(strings.ReplaceAll(suffix, "_", " "))
	}
	switch p1 {
	case "BT_SEL":
		if !has2 {
			return "BT?"
		}
		return "BT" + p2
	case "BT_CLR":
		return "BT CLR"
	case "BT_CLR_ALL":
		return "BT CLR ALL"
	}
	lbl := strings.ReplaceAll(p1, "_", " ")
	if !strings.HasPrefix(lbl, "BT") {
		lbl = "BT " + lbl
	}
	if has2 {
		lbl += " " + p2
	}
	return lbl
}
