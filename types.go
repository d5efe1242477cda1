package simd128

import (
	"github.com/wippyai/simd128/internal/types"
)

// Kind tags the seven vector layouts for runtime dispatch.
type Kind = types.Kind

const (
	KindFloat32x4 = types.KindFloat32x4
	KindInt32x4   = types.KindInt32x4
	KindBool32x4  = types.KindBool32x4
	KindInt16x8   = types.KindInt16x8
	KindBool16x8  = types.KindBool16x8
	KindInt8x16   = types.KindInt8x16
	KindBool8x16  = types.KindBool8x16
)
