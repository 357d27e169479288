package label

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A", "A"},
		{"Q", "Q"},
		{"N1", "1"},
		{"N0", "0"},
		{"F1", "F1"},
		{"F12", "F12"},
		{"F24", "F24"},
		{"SPACE", "Space"},
		{"BSPC", "BkSp"},
		{"LSHFT", "LShift"},
		{"PG_UP", "PgUp"},
		{"LEFT", "←"},
		{"COMMA", ","},
		{"FSLH", "/"},
		{"BSLH", "\\"},
		{"CAPS", "Caps"},
		{"C_VOL_UP", "C_VOL_UP"},
		{"N10", "N10"},
		{"a", "a"},
		{"", ""},
		{"LS(N1)", "LS(N1)"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTableValuesAreFixedPoints(t *testing.T) {
	for key, value := range keyLabels {
		if got := Format(value); got != value {
			t.Errorf("Format(%q) = %q; value of %q is not a fixed point", value, got, key)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{"N5", "F7", "Z", "ENTER", "DLLR", "UNKNOWN_KEY", "N", "F", "→", "0"}
	for key := range keyLabels {
		inputs = append(inputs, key)
	}
	for _, in := range inputs {
		once := Format(in)
		if twice := Format(once); twice != once {
			t.Errorf("Format not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestShortModifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"LGUI", "G"},
		{"RCMD", "G"},
		{"LWIN", "G"},
		{"LALT", "A"},
		{"ROPT", "A"},
		{"LSHFT", "S"},
		{"RSHIFT", "S"},
		{"LCTRL", "C"},
		{"RCTL", "C"},
		{"HYPER", "H"},
		{"ärger", "ä"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := ShortModifier(tt.in); got != tt.want {
			t.Errorf("ShortModifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
