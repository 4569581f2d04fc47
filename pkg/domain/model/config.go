// 指示: miu200521358
package model

import (
	"fmt"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// FlexPolicy はヒンジ用フレックス値の抽出方針を表す。
type FlexPolicy string

const (
	// FLEX_POLICY_PREFER_Y はY成分を優先し、零ならX/Zの大きい方を採る方針。
	FLEX_POLICY_PREFER_Y FlexPolicy = "prefer_y"
	// FLEX_POLICY_FIRST_NONZERO はX/Y/Z順で最初の非零成分を採る方針。
	FLEX_POLICY_FIRST_NONZERO FlexPolicy = "first_nonzero"
)

// IsValid は定義済み方針か判定する。
func (p FlexPolicy) IsValid() bool {
	return p == FLEX_POLICY_PREFER_Y || p == FLEX_POLICY_FIRST_NONZERO
}

// defaultManagedBones は標準ヒューマノイドの既定処理順。指もIKも含めない。
var defaultManagedBones = []string{
	"Hips", "Spine", "Spine1", "Spine2", "Spine3", "Neck", "Neck1", "Head",
	"LeftShoulder", "LeftArm", "LeftForeArm", "LeftHand",
	"RightShoulder", "RightArm", "RightForeArm", "RightHand",
	"LeftUpLeg", "LeftLeg", "LeftFoot", "LeftToeBase",
	"RightUpLeg", "RightLeg", "RightFoot", "RightToeBase",
}

// defaultHingePairs は肘・膝のヒンジ候補親子対。
var defaultHingePairs = []HingePair{
	{ParentName: "LeftArm", ChildName: "LeftForeArm"},
	{ParentName: "RightArm", ChildName: "RightForeArm"},
	{ParentName: "LeftUpLeg", ChildName: "LeftLeg"},
	{ParentName: "RightUpLeg", ChildName: "RightLeg"},
}

// PoseConfig は姿勢適用の静的設定を表す。構築時に複製され、以後は変更しない。
type PoseConfig struct {
	Mirror             bool
	MirrorNames        map[string]string
	HingeAxisOverrides map[string]string
	HingeSignOverrides map[string]float64
	HingePairs         []HingePair
	ManagedBones       []string
	FlexPolicy         FlexPolicy
}

// DefaultPoseConfig は標準ヒューマノイド向けの既定設定を生成する。
func DefaultPoseConfig() *PoseConfig {
	return &PoseConfig{
		Mirror:       false,
		HingePairs:   append([]HingePair(nil), defaultHingePairs...),
		ManagedBones: append([]string(nil), defaultManagedBones...),
		FlexPolicy:   FLEX_POLICY_PREFER_Y,
	}
}

// Normalized は複製した設定に既定値を補完して返す。元の設定は変更しない。
func (c *PoseConfig) Normalized() (*PoseConfig, error) {
	if c == nil {
		return DefaultPoseConfig(), nil
	}
	copied := &PoseConfig{}
	if err := deepcopy.Copy(copied, c); err != nil {
		return nil, fmt.Errorf("設定の複製に失敗しました: %w", err)
	}
	if len(copied.ManagedBones) == 0 {
		copied.ManagedBones = append([]string(nil), defaultManagedBones...)
	}
	if copied.FlexPolicy == "" {
		copied.FlexPolicy = FLEX_POLICY_PREFER_Y
	}
	if !copied.FlexPolicy.IsValid() {
		return nil, fmt.Errorf("未定義のフレックス抽出方針です: %s", copied.FlexPolicy)
	}
	return copied, nil
}
