package xflag

import "errors"

var (
	// ErrDuplicateFlag 表示表中出现重名标志。
	ErrDuplicateFlag = errors.New("xflag: duplicate flag name")

	// ErrFlagOverlapsMode 表示单比特标志与模式子字段的掩码区间重叠。
	ErrFlagOverlapsMode = errors.New("xflag: flag overlaps mode mask")

	// ErrInvalidMode 表示模式子字段定义非法（空掩码、成员越界或多个零值成员）。
	ErrInvalidMode = errors.New("xflag: invalid mode field")
)
