// 指示: miu200521358
package model

import "fmt"

const (
	// PoseWarningMissingPoseBone は姿勢対象ボーン欠落警告。
	PoseWarningMissingPoseBone = "PoseWarningMissingPoseBone"
	// PoseWarningMissingHingePairBone はヒンジ対ボーン欠落警告。
	PoseWarningMissingHingePairBone = "PoseWarningMissingHingePairBone"
	// PoseWarningMissingManagedBone は管理対象ボーン欠落警告。
	PoseWarningMissingManagedBone = "PoseWarningMissingManagedBone"
	// PoseWarningInvalidAxisOverride は軸指定不正警告。
	PoseWarningInvalidAxisOverride = "PoseWarningInvalidAxisOverride"
	// PoseWarningInvalidSignOverride は符号指定不正警告。
	PoseWarningInvalidSignOverride = "PoseWarningInvalidSignOverride"
)

// PoseWarning は適用を中断しない警告1件を表す。
type PoseWarning struct {
	ID       string
	BoneName string
	Message  string
}

// NewPoseWarning は警告を生成する。
func NewPoseWarning(id string, boneName string, format string, params ...any) PoseWarning {
	return PoseWarning{
		ID:       id,
		BoneName: boneName,
		Message:  fmt.Sprintf(format, params...),
	}
}

// String は表示用文字列を返す。
func (w PoseWarning) String() string {
	if w.BoneName == "" {
		return fmt.Sprintf("[%s] %s", w.ID, w.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", w.ID, w.BoneName, w.Message)
}
