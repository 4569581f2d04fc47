// 指示: miu200521358
package model

import (
	"sort"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// Pose はボーン名から目標ローカル回転(度、X/Y/Z順)への対応を表す。
type Pose map[string][3]float64

// SortedNames は姿勢対象ボーン名を昇順で返す。
func (p Pose) SortedNames() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PoseBuffer はボーンごとの現在ローカル回転(ラジアン、X/Y/Z順)を表す。
// 1回の適用中は単一の書き込み主体のみがアクセスする契約とする。
type PoseBuffer struct {
	rotations map[string][3]float64
}

// NewPoseBuffer は空のPoseBufferを生成する。
func NewPoseBuffer() *PoseBuffer {
	return &PoseBuffer{rotations: map[string][3]float64{}}
}

// Reset は指定ボーンの回転を零へ初期化する。
func (b *PoseBuffer) Reset(names []string) {
	if b == nil {
		return
	}
	for _, name := range names {
		b.rotations[name] = [3]float64{}
	}
}

// Set は指定ボーンの回転を上書きする。
func (b *PoseBuffer) Set(name string, rotation [3]float64) {
	if b == nil {
		return
	}
	b.rotations[name] = rotation
}

// Get は指定ボーンの回転を返す。
func (b *PoseBuffer) Get(name string) ([3]float64, bool) {
	if b == nil {
		return [3]float64{}, false
	}
	rotation, exists := b.rotations[name]
	return rotation, exists
}

// AddAxis は指定ボーンの1軸へ回転量を加算する。
func (b *PoseBuffer) AddAxis(name string, axis Axis, radian float64) {
	if b == nil || !axis.IsValid() {
		return
	}
	rotation := b.rotations[name]
	rotation[int(axis)] += radian
	b.rotations[name] = rotation
}

// Len は保持ボーン数を返す。
func (b *PoseBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rotations)
}

// Names は保持ボーン名を昇順で返す。
func (b *PoseBuffer) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.rotations))
	for name := range b.rotations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot は現在状態の複製を返す。呼び出し側の後続変更から独立する。
func (b *PoseBuffer) Snapshot() map[string][3]float64 {
	out := map[string][3]float64{}
	if b == nil {
		return out
	}
	if err := deepcopy.Copy(&out, b.rotations); err != nil {
		return map[string][3]float64{}
	}
	return out
}
