// 指示: miu200521358
// Package model はFK姿勢適用のドメインモデルを提供する。
package model

import (
	"math"
	"strings"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
)

// constraintLockEpsilon は回転制限をロック扱いする判定閾値。
const constraintLockEpsilon = 1e-6

// Axis はボーンローカル回転軸を表す。
type Axis int

const (
	// AXIS_NONE は軸未解決を表す。
	AXIS_NONE Axis = -1
	// AXIS_X はローカルX軸を表す。
	AXIS_X Axis = 0
	// AXIS_Y はローカルY軸を表す。
	AXIS_Y Axis = 1
	// AXIS_Z はローカルZ軸を表す。
	AXIS_Z Axis = 2
)

// IsValid は有効軸か判定する。
func (a Axis) IsValid() bool {
	return a == AXIS_X || a == AXIS_Y || a == AXIS_Z
}

// String は軸ラベルを返す。
func (a Axis) String() string {
	switch a {
	case AXIS_X:
		return "X"
	case AXIS_Y:
		return "Y"
	case AXIS_Z:
		return "Z"
	}
	return ""
}

// ParseAxis は軸ラベルを解析する。X/Y/Z以外は(AXIS_NONE, false)を返す。
func ParseAxis(label string) (Axis, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "X":
		return AXIS_X, true
	case "Y":
		return AXIS_Y, true
	case "Z":
		return AXIS_Z, true
	}
	return AXIS_NONE, false
}

// AxisLimit は1軸分の回転制限を表す。Min/Maxはラジアン。
type AxisLimit struct {
	Enabled bool
	Min     float64
	Max     float64
}

// IsLocked は有効かつ可動域が零の軸か判定する。
func (l AxisLimit) IsLocked() bool {
	return l.Enabled &&
		math.Abs(l.Min) < constraintLockEpsilon &&
		math.Abs(l.Max) < constraintLockEpsilon
}

// IsFree は回転可能な軸か判定する。無効軸、または零以外の可動域を持つ軸が該当する。
func (l AxisLimit) IsFree() bool {
	return !l.IsLocked()
}

// RotationLimit はボーン1本分の回転制限を表す。
type RotationLimit struct {
	X AxisLimit
	Y AxisLimit
	Z AxisLimit
}

// AxisLimit は指定軸の制限を返す。
func (l *RotationLimit) AxisLimit(axis Axis) AxisLimit {
	if l == nil {
		return AxisLimit{}
	}
	switch axis {
	case AXIS_X:
		return l.X
	case AXIS_Y:
		return l.Y
	case AXIS_Z:
		return l.Z
	}
	return AxisLimit{}
}

// Bone はレスト姿勢のボーン1本を表す。生成後は読み取り専用として扱う。
type Bone struct {
	Name       string
	ParentName string
	Head       mmath.Vec3
	Tail       mmath.Vec3
	LocalAxisX mmath.Vec3
	LocalAxisY mmath.Vec3
	LocalAxisZ mmath.Vec3
	Limit      *RotationLimit
}

// NewBoneByName は単位ローカル軸のボーンを生成する。
func NewBoneByName(name string) *Bone {
	return &Bone{
		Name:       name,
		LocalAxisX: mmath.UNIT_X_VEC3,
		LocalAxisY: mmath.UNIT_Y_VEC3,
		LocalAxisZ: mmath.UNIT_Z_VEC3,
	}
}

// Direction はレスト姿勢のボーン方向単位ベクトルを返す。
func (b *Bone) Direction() mmath.Vec3 {
	return b.Tail.Subed(b.Head).Normalized()
}

// LocalAxis は指定軸のローカル軸ベクトルを返す。
func (b *Bone) LocalAxis(axis Axis) mmath.Vec3 {
	switch axis {
	case AXIS_X:
		return b.LocalAxisX
	case AXIS_Y:
		return b.LocalAxisY
	case AXIS_Z:
		return b.LocalAxisZ
	}
	return mmath.ZERO_VEC3
}
