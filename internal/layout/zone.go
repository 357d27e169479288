package layout

// Zone is one physical key group.
type Zone uint8

const (
	LeftMain Zone = iota
	RightMain
	LeftThumb
	RightThumb

	NumZones
)

// Zones lists every zone in document order.
var Zones = [NumZones]Zone{LeftMain, RightMain, LeftThumb, RightThumb}

var zoneNames = [NumZones]string{
	LeftMain:   "left",
	RightMain:  "right",
	LeftThumb:  "left_thumb",
	RightThumb: "right_thumb",
}

// String returns the key used for the zone in exported documents.
func (z Zone) String() string {
	if z < NumZones {
		return zoneNames[z]
	}
	return "zone(?)"
}
