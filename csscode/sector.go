package csscode

// Sector tags the two generator families of a CSS code.
//
// The zero value is X. Bool/SectorFromBool keep the boolean tag convention
// (false = X, true = Z) for callers that key data by a plain flag.
type Sector uint8

const (
	// X is the sector of X-type generators (boolean tag false).
	X Sector = iota
	// Z is the sector of Z-type generators (boolean tag true).
	Z
)

// Sectors lists both sectors in tag order.
var Sectors = [2]Sector{X, Z}

// Opposite returns the other sector.
func (s Sector) Opposite() Sector { return s ^ 1 }

// Bool returns the boolean tag: false for X, true for Z.
func (s Sector) Bool() bool { return s == Z }

// SectorFromBool maps the boolean tag back to a Sector.
func SectorFromBool(b bool) Sector {
	if b {
		return Z
	}
	return X
}

// String returns "X" or "Z".
func (s Sector) String() string {
	if s == Z {
		return "Z"
	}
	return "X"
}
