package scout

import "strings"

// Position labels. Unknown is the sentinel for codes outside the lookup.
const (
	Goalkeeper = "Goalkeeper"
	Fullback   = "Fullback"
	Defender   = "Defender"
	Midfielder = "Midfielder"
	Forward    = "Forward"
	Coach      = "Coach"
	Unknown    = "Unknown"
)

var positionLabels = map[int]string{
	1: Goalkeeper,
	2: Fullback,
	3: Defender,
	4: Midfielder,
	5: Forward,
	6: Coach,
}

// PositionLabel maps a Cartola position id to its label. Unmapped ids
// yield Unknown.
func PositionLabel(id int) string {
	if label, found := positionLabels[id]; found {
		return label
	}
	return Unknown
}

// Known reports whether label is one of the six mapped positions.
func Known(label string) bool {
	return label != "" && label != Unknown
}

// PositionTable returns the per-position table name for a label.
func PositionTable(label string) string {
	return "position_" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
