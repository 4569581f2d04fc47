// 指示: miu200521358
package model

// HingeSource はヒンジ軸決定の根拠を表す。
type HingeSource string

const (
	// HINGE_SOURCE_NONE は未解決を表す。
	HINGE_SOURCE_NONE HingeSource = "none"
	// HINGE_SOURCE_OVERRIDE は明示指定による決定を表す。
	HINGE_SOURCE_OVERRIDE HingeSource = "override"
	// HINGE_SOURCE_CONSTRAINT は回転制限による決定を表す。
	HINGE_SOURCE_CONSTRAINT HingeSource = "constraint"
	// HINGE_SOURCE_GEOMETRY はレスト形状による決定を表す。
	HINGE_SOURCE_GEOMETRY HingeSource = "geometry"
)

// HingeDecision はボーン1本分のヒンジ軸決定を表す。
type HingeDecision struct {
	Axis   Axis
	Sign   float64
	Source HingeSource
}

// NewNonHingeDecision は非ヒンジ決定を生成する。
func NewNonHingeDecision() HingeDecision {
	return HingeDecision{Axis: AXIS_NONE, Sign: 1.0, Source: HINGE_SOURCE_NONE}
}

// IsHinge は単軸ヒンジとして扱うか判定する。
func (d HingeDecision) IsHinge() bool {
	return d.Axis.IsValid() && d.Source != HINGE_SOURCE_NONE
}

// HingePair はヒンジ候補の親子ボーン対を表す。
type HingePair struct {
	ParentName string
	ChildName  string
}
