// 指示: miu200521358
package model

// MirrorMap は左右ボーン名の静的対応を表す。
type MirrorMap struct {
	names map[string]string
}

// defaultHumanoidMirrorNames は標準ヒューマノイドの左右対応表。
var defaultHumanoidMirrorNames = map[string]string{
	"LeftShoulder": "RightShoulder", "RightShoulder": "LeftShoulder",
	"LeftArm": "RightArm", "RightArm": "LeftArm",
	"LeftForeArm": "RightForeArm", "RightForeArm": "LeftForeArm",
	"LeftHand": "RightHand", "RightHand": "LeftHand",
	"LeftUpLeg": "RightUpLeg", "RightUpLeg": "LeftUpLeg",
	"LeftLeg": "RightLeg", "RightLeg": "LeftLeg",
	"LeftFoot": "RightFoot", "RightFoot": "LeftFoot",
	"LeftToeBase": "RightToeBase", "RightToeBase": "LeftToeBase",
}

// NewMirrorMap は対応表を複製してMirrorMapを生成する。空ならデフォルト表を使う。
func NewMirrorMap(names map[string]string) *MirrorMap {
	source := names
	if len(source) == 0 {
		source = defaultHumanoidMirrorNames
	}
	copied := make(map[string]string, len(source))
	for from, to := range source {
		copied[from] = to
	}
	return &MirrorMap{names: copied}
}

// Resolve は対応先ボーン名を返す。対応が無い名前はそのまま返す。
// 置換は1回だけ適用する前提であり、再適用すると元の名前へ戻る。
func (m *MirrorMap) Resolve(name string) string {
	if m == nil {
		return name
	}
	if mirrored, exists := m.names[name]; exists {
		return mirrored
	}
	return name
}
