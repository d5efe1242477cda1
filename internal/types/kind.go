package types

type Kind uint8

const (
	KindFloat32x4 Kind = iota
	KindInt32x4
	KindBool32x4
	KindInt16x8
	KindBool16x8
	KindInt8x16
	KindBool8x16
)

var kindNames = [...]string{
	KindFloat32x4: "float32x4",
	KindInt32x4:   "int32x4",
	KindBool32x4:  "bool32x4",
	KindInt16x8:   "int16x8",
	KindBool16x8:  "bool16x8",
	KindInt8x16:   "int8x16",
	KindBool8x16:  "bool8x16",
}

var laneCounts = [...]int{
	KindFloat32x4: 4,
	KindInt32x4:   4,
	KindBool32x4:  4,
	KindInt16x8:   8,
	KindBool16x8:  8,
	KindInt8x16:   16,
	KindBool8x16:  16,
}

// laneBits is the width of one lane slot in the 128-bit layout. Boolean
// kinds hold one logical bit per lane but occupy a full slot.
var laneBits = [...]int{
	KindFloat32x4: 32,
	KindInt32x4:   32,
	KindBool32x4:  32,
	KindInt16x8:   16,
	KindBool16x8:  16,
	KindInt8x16:   8,
	KindBool8x16:  8,
}

var boolCounterparts = [...]Kind{
	KindFloat32x4: KindBool32x4,
	KindInt32x4:   KindBool32x4,
	KindBool32x4:  KindBool32x4,
	KindInt16x8:   KindBool16x8,
	KindBool16x8:  KindBool16x8,
	KindInt8x16:   KindBool8x16,
	KindBool8x16:  KindBool8x16,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) LaneCount() int {
	return laneCounts[k]
}

func (k Kind) LaneBits() int {
	return laneBits[k]
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32x4
}

func (k Kind) IsInt() bool {
	return k == KindInt32x4 || k == KindInt16x8 || k == KindInt8x16
}

func (k Kind) IsBool() bool {
	return k == KindBool32x4 || k == KindBool16x8 || k == KindBool8x16
}

func (k Kind) IsNumeric() bool {
	return k.IsFloat() || k.IsInt()
}

// BoolCounterpart returns the boolean kind with the same lane geometry,
// the kind produced by relational ops and consumed as a select mask.
func (k Kind) BoolCounterpart() Kind {
	return boolCounterparts[k]
}
