package texture

// Axis selects one of the two independent sets of texture units.
type Axis uint8

const (
	// AxisServer is the unit selected with ActiveTexture.
	AxisServer Axis = iota
	// AxisClient is the unit selected with ClientActiveTexture.
	AxisClient
)

// String returns the name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisServer:
		return "server"
	case AxisClient:
		return "client"
	default:
		return "unknown"
	}
}

// DefaultMaxUnits is the number of texture units per axis.
const DefaultMaxUnits = 8

// Units tracks the active unit and the bound texture name of every unit on
// both axes. Slots hold names, never objects.
type Units struct {
	active [2]int
	bound  [2][]uint32
	rect   []bool
}

func newUnits(n int) *Units {
	return &Units{
		bound: [2][]uint32{make([]uint32, n), make([]uint32, n)},
		rect:  make([]bool, n),
	}
}

// Max returns the number of units per axis.
func (u *Units) Max() int {
	return len(u.rect)
}

// SetActive selects unit on axis. Out-of-range units are ignored and
// SetActive reports false.
func (u *Units) SetActive(axis Axis, unit int) bool {
	if axis > AxisClient || unit < 0 || unit >= u.Max() {
		return false
	}
	u.active[axis] = unit
	return true
}

// Active returns the active unit of axis.
func (u *Units) Active(axis Axis) int {
	return u.active[axis]
}

// Bind binds name to the active unit of axis. rect records whether the
// binding targets a rectangle texture; only the server axis keeps it.
func (u *Units) Bind(axis Axis, name uint32, rect bool) {
	unit := u.active[axis]
	u.bound[axis][unit] = name
	if axis == AxisServer {
		u.rect[unit] = rect
	}
}

// Current returns the name bound to the active unit of axis, 0 if none.
func (u *Units) Current(axis Axis) uint32 {
	return u.bound[axis][u.active[axis]]
}

// BoundAt returns the name bound to unit on axis, 0 if none or out of range.
func (u *Units) BoundAt(axis Axis, unit int) uint32 {
	if unit < 0 || unit >= u.Max() {
		return 0
	}
	return u.bound[axis][unit]
}

// IsRectangle reports whether the last bind on server unit targeted a
// rectangle texture.
func (u *Units) IsRectangle(unit int) bool {
	if unit < 0 || unit >= u.Max() {
		return false
	}
	return u.rect[unit]
}

// Clear unbinds name from every unit of both axes and returns the number of
// slots cleared.
func (u *Units) Clear(name uint32) int {
	if name == 0 {
		return 0
	}
	n := 0
	for axis := range u.bound {
		for i, b := range u.bound[axis] {
			if b == name {
				u.bound[axis][i] = 0
				n++
			}
		}
	}
	return n
}
