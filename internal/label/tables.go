package label

// keyLabels maps ZMK key identifiers to display labels. Every value is
// mapped to itself by Format.
var keyLabels = map[string]string{
	// letters
	"A": "A", "B": "B", "C": "C", "D": "D", "E": "E", "F": "F", "G": "G",
	"H": "H", "I": "I", "J": "J", "K": "K", "L": "L", "M": "M", "N": "N",
	"O": "O", "P": "P", "Q": "Q", "R": "R", "S": "S", "T": "T", "U": "U",
	"V": "V", "W": "W", "X": "X", "Y": "Y", "Z": "Z",

	// number row
	"N0": "0", "N1": "1", "N2": "2", "N3": "3", "N4": "4",
	"N5": "5", "N6": "6", "N7": "7", "N8": "8", "N9": "9",

	// function keys
	"F1": "F1", "F2": "F2", "F3": "F3", "F4": "F4", "F5": "F5", "F6": "F6",
	"F7": "F7", "F8": "F8", "F9": "F9", "F10": "F10", "F11": "F11", "F12": "F12",

	// modifiers
	"LSHFT": "LShift", "RSHFT": "RShift", "LSHIFT": "LShift", "RSHIFT": "RShift",
	"LCTRL": "LCtrl", "RCTRL": "RCtrl", "LCTL": "LCtrl", "RCTL": "RCtrl",
	"LALT": "LAlt", "RALT": "RAlt", "LGUI": "LGui", "RGUI": "RGui",
	"LCMD": "LCmd", "RCMD": "RCmd", "LWIN": "LWin", "RWIN": "RWin",

	// navigation
	"UP": "↑", "DOWN": "↓", "LEFT": "←", "RIGHT": "→",
	"HOME": "Home", "END": "End",
	"PG_UP": "PgUp", "PAGE_UP": "PgUp", "PG_DN": "PgDn", "PAGE_DOWN": "PgDn",

	// editing
	"ESC": "Esc", "ESCAPE": "Esc", "TAB": "Tab",
	"ENTER": "Enter", "RET": "Enter", "RETURN": "Enter",
	"SPACE": "Space", "SPC": "Space",
	"BSPC": "BkSp", "BACKSPACE": "BkSp", "BKSP": "BkSp",
	"DEL": "Del", "DELETE": "Del",
	"INS": "Ins", "INSERT": "Ins",

	// punctuation
	"MINUS": "-", "EQUAL": "=", "PLUS": "+",
	"LBKT": "[", "RBKT": "]", "LBRC": "{", "RBRC": "}",
	"LPAR": "(", "RPAR": ")", "LPAREN": "(", "RPAREN": ")",
	"LT": "<", "GT": ">",
	"COMMA": ",", "DOT": ".", "PERIOD": ".",
	"SEMI": ";", "SEMICOLON": ";", "COLON": ":",
	"SQT": "'", "APOS": "'", "APOSTROPHE": "'",
	"DQT": "\"", "DOUBLE_QUOTES": "\"",
	"GRAVE": "`", "TILDE": "~",
	"BSLH": "\\", "BACKSLASH": "\\", "BSLASH": "\\",
	"FSLH": "/", "SLASH": "/", "FSLASH": "/",
	"PIPE": "|", "QMARK": "?", "QUESTION": "?",
	"EXCL": "!", "EXCLAMATION": "!",
	"AT": "@", "HASH": "#", "POUND": "#",
	"DOLLAR": "$", "DLLR": "$",
	"PERCENT": "%", "PRCNT": "%",
	"CARET": "^", "AMPERSAND": "&", "AMPS": "&",
	"STAR": "*", "ASTERISK": "*", "ASTRK": "*",
	"UNDERSCORE": "_", "UNDER": "_",

	// locks and system keys
	"CAPS": "Caps", "CAPSLOCK": "Caps", "CAPS_LOCK": "Caps",
	"SLCK": "ScrLk", "SCROLLLOCK": "ScrLk",
	"NLCK": "NumLk", "NUMLOCK": "NumLk",
	"PSCRN": "PrtSc", "PRINTSCREEN": "PrtSc",
	"PAUSE_BREAK": "Pause",
}

// modifierShort gives the one-letter form used in hold-tap labels.
var modifierShort = map[string]string{
	"LGUI": "G", "RGUI": "G", "LCMD": "G", "RCMD": "G", "LWIN": "G", "RWIN": "G",
	"LALT": "A", "RALT": "A", "LOPT": "A", "ROPT": "A",
	"LSHFT": "S", "RSHFT": "S", "LSHIFT": "S", "RSHIFT": "S",
	"LCTRL": "C", "RCTRL": "C", "LCTL": "C", "RCTL": "C",
}
