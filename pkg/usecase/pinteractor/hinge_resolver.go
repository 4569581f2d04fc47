// 指示: miu200521358
package pinteractor

import (
	"math"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
)

// collinearEpsilon は親子ボーンをほぼ一直線と判定する外積長の閾値。
const collinearEpsilon = 1e-6

var resolveAxisOrder = []model.Axis{model.AXIS_X, model.AXIS_Y, model.AXIS_Z}

// resolveFromConstraints は回転制限からヒンジ軸を推定する。
// 自由軸がちょうど1本のときのみ確定し、0本または2本以上は判定不能とする。
func resolveFromConstraints(bone *model.Bone) (model.Axis, bool) {
	if bone == nil || bone.Limit == nil {
		return model.AXIS_NONE, false
	}
	freeAxes := make([]model.Axis, 0, 3)
	for _, axis := range resolveAxisOrder {
		if bone.Limit.AxisLimit(axis).IsFree() {
			freeAxes = append(freeAxes, axis)
		}
	}
	if len(freeAxes) == 1 {
		return freeAxes[0], true
	}
	return model.AXIS_NONE, false
}

// resolveFromGeometry はレスト形状からヒンジ軸を推定する。
// 親子ボーン方向の外積で曲げ平面の法線を求め、子のローカル軸のうち最も沿う軸を選ぶ。
func resolveFromGeometry(parent *model.Bone, child *model.Bone) model.Axis {
	parentDirection := parent.Direction()
	childDirection := child.Direction()

	bendNormal := parentDirection.Cross(childDirection)
	if bendNormal.Length() < collinearEpsilon {
		// ほぼ一直線で曲げ平面が定義できない。
		// ボーン方向と平行な軸よりは直交に近い軸の方が安全な既定なので、最も沿わない軸を選ぶ。
		return leastAlignedLocalAxis(child, childDirection)
	}
	return mostAlignedLocalAxis(child, bendNormal.Normalized())
}

// mostAlignedLocalAxis は対象ベクトルと最も沿うローカル軸を返す。同点はX→Y→Z順で先勝ち。
func mostAlignedLocalAxis(bone *model.Bone, target mmath.Vec3) model.Axis {
	best := model.AXIS_X
	bestScore := -1.0
	for _, axis := range resolveAxisOrder {
		score := math.Abs(bone.LocalAxis(axis).Dot(target))
		if score > bestScore {
			best = axis
			bestScore = score
		}
	}
	return best
}

// leastAlignedLocalAxis は対象ベクトルと最も沿わないローカル軸を返す。同点はX→Y→Z順で先勝ち。
func leastAlignedLocalAxis(bone *model.Bone, target mmath.Vec3) model.Axis {
	best := model.AXIS_X
	bestScore := math.MaxFloat64
	for _, axis := range resolveAxisOrder {
		score := math.Abs(bone.LocalAxis(axis).Dot(target))
		if score < bestScore {
			best = axis
			bestScore = score
		}
	}
	return best
}

// buildHingeMap はヒンジ軸決定表と構築時警告を生成する。
func (uc *PoseUsecase) buildHingeMap() (map[string]model.HingeDecision, []model.PoseWarning) {
	hingeMap := map[string]model.HingeDecision{}
	warnings := make([]model.PoseWarning, 0)

	pairParents := map[string]string{}
	for _, pair := range uc.config.HingePairs {
		parentName := uc.canonicalName(pair.ParentName)
		childName := uc.canonicalName(pair.ChildName)
		missing := false
		for _, name := range []string{parentName, childName} {
			if uc.skeleton.ContainsByName(name) {
				continue
			}
			warnings = append(warnings, model.NewPoseWarning(
				model.PoseWarningMissingHingePairBone, name, "ヒンジ対ボーンがスケルトンにありません"))
			missing = true
		}
		if missing {
			continue
		}
		pairParents[childName] = parentName
	}

	for _, name := range uc.collectHingeTargets(pairParents) {
		hingeMap[name] = uc.resolveHingeFor(name, pairParents, &warnings)
	}

	logApplyDebug("ヒンジ軸決定表構築完了: bones=%d pairs=%d warnings=%d",
		len(hingeMap), len(pairParents), len(warnings))
	return hingeMap, warnings
}

// collectHingeTargets は決定対象ボーン名を管理順→ヒンジ対→明示指定の順で重複なく集める。
func (uc *PoseUsecase) collectHingeTargets(pairParents map[string]string) []string {
	targets := make([]string, 0, len(uc.config.ManagedBones)+len(pairParents))
	seen := map[string]struct{}{}
	appendTarget := func(name string) {
		if _, exists := seen[name]; exists {
			return
		}
		if !uc.skeleton.ContainsByName(name) {
			return
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}

	for _, name := range uc.config.ManagedBones {
		appendTarget(name)
	}
	for childName := range pairParents {
		appendTarget(childName)
	}
	// 明示指定の鍵は置換後の実ボーン名で与える契約とし、ここでは再置換しない。
	for name := range uc.config.HingeAxisOverrides {
		appendTarget(name)
	}
	return targets
}

// resolveHingeFor はボーン1本のヒンジ軸を明示指定→回転制限→レスト形状の優先順で決定する。
func (uc *PoseUsecase) resolveHingeFor(
	name string,
	pairParents map[string]string,
	warnings *[]model.PoseWarning,
) model.HingeDecision {
	sign := 1.0
	if raw, exists := uc.config.HingeSignOverrides[name]; exists {
		if raw == 1.0 || raw == -1.0 {
			sign = raw
		} else {
			*warnings = append(*warnings, model.NewPoseWarning(
				model.PoseWarningInvalidSignOverride, name, "符号指定が+1/-1ではありません: %v", raw))
		}
	}

	if label, exists := uc.config.HingeAxisOverrides[name]; exists {
		if axis, ok := model.ParseAxis(label); ok {
			return model.HingeDecision{Axis: axis, Sign: sign, Source: model.HINGE_SOURCE_OVERRIDE}
		}
		*warnings = append(*warnings, model.NewPoseWarning(
			model.PoseWarningInvalidAxisOverride, name, "軸ラベルがX/Y/Zではありません: %s", label))
	}

	bone, err := uc.skeleton.GetByName(name)
	if err != nil {
		return model.NewNonHingeDecision()
	}

	if axis, ok := resolveFromConstraints(bone); ok {
		return model.HingeDecision{Axis: axis, Sign: sign, Source: model.HINGE_SOURCE_CONSTRAINT}
	}

	if parentName, exists := pairParents[name]; exists {
		if parent, err := uc.skeleton.GetByName(parentName); err == nil {
			return model.HingeDecision{
				Axis:   resolveFromGeometry(parent, bone),
				Sign:   sign,
				Source: model.HINGE_SOURCE_GEOMETRY,
			}
		}
	}

	return model.NewNonHingeDecision()
}
