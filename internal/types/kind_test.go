package types

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"float32x4", KindFloat32x4},
		{"int32x4", KindInt32x4},
		{"bool32x4", KindBool32x4},
		{"int16x8", KindInt16x8},
		{"bool16x8", KindBool16x8},
		{"int8x16", KindInt8x16},
		{"bool8x16", KindBool8x16},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindGeometry(t *testing.T) {
	tests := []struct {
		kind  Kind
		lanes int
		bits  int
	}{
		{KindFloat32x4, 4, 32},
		{KindInt32x4, 4, 32},
		{KindBool32x4, 4, 32},
		{KindInt16x8, 8, 16},
		{KindBool16x8, 8, 16},
		{KindInt8x16, 16, 8},
		{KindBool8x16, 16, 8},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.LaneCount(); got != tc.lanes {
				t.Errorf("LaneCount() = %d, want %d", got, tc.lanes)
			}
			if got := tc.kind.LaneBits(); got != tc.bits {
				t.Errorf("LaneBits() = %d, want %d", got, tc.bits)
			}
			// every non-boolean kind spans exactly 128 bits
			if !tc.kind.IsBool() {
				if total := tc.lanes * tc.bits; total != 128 {
					t.Errorf("total bits = %d, want 128", total)
				}
			}
		})
	}
}

func TestKindClasses(t *testing.T) {
	ints := []Kind{KindInt32x4, KindInt16x8, KindInt8x16}
	bools := []Kind{KindBool32x4, KindBool16x8, KindBool8x16}

	if !KindFloat32x4.IsFloat() || !KindFloat32x4.IsNumeric() {
		t.Error("float32x4 should be float and numeric")
	}
	for _, k := range ints {
		if !k.IsInt() || !k.IsNumeric() || k.IsBool() || k.IsFloat() {
			t.Errorf("%s misclassified", k)
		}
	}
	for _, k := range bools {
		if !k.IsBool() || k.IsNumeric() {
			t.Errorf("%s misclassified", k)
		}
	}
}

func TestBoolCounterpart(t *testing.T) {
	tests := []struct {
		kind Kind
		want Kind
	}{
		{KindFloat32x4, KindBool32x4},
		{KindInt32x4, KindBool32x4},
		{KindBool32x4, KindBool32x4},
		{KindInt16x8, KindBool16x8},
		{KindBool16x8, KindBool16x8},
		{KindInt8x16, KindBool8x16},
		{KindBool8x16, KindBool8x16},
	}

	for _, tc := range tests {
		if got := tc.kind.BoolCounterpart(); got != tc.want {
			t.Errorf("%s.BoolCounterpart() = %s, want %s", tc.kind, got, tc.want)
		}
	}
}
