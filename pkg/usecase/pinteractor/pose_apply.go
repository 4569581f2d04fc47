// 指示: miu200521358
package pinteractor

import (
	"fmt"
	"math"
	"sort"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
)

// ApplyPose は姿勢1件をバッファへ適用し、非致命警告を返す。
// 管理対象ボーンを零初期化してから書き込むため、同じ姿勢の再適用は同じ結果になる。
func (uc *PoseUsecase) ApplyPose(buffer *model.PoseBuffer, pose model.Pose) ([]model.PoseWarning, error) {
	if uc == nil || uc.skeleton == nil || uc.config == nil {
		return nil, fmt.Errorf("ユースケースが初期化されていません")
	}
	if buffer == nil {
		return nil, fmt.Errorf("姿勢バッファがnilです")
	}

	warnings := make([]model.PoseWarning, 0)

	// Resetting: 管理対象ボーンを零初期化する
	managedExisting := make([]string, 0, len(uc.config.ManagedBones))
	for _, name := range uc.config.ManagedBones {
		if !uc.skeleton.ContainsByName(name) {
			warnings = append(warnings, model.NewPoseWarning(
				model.PoseWarningMissingManagedBone, name, "管理対象ボーンがスケルトンにありません"))
			continue
		}
		managedExisting = append(managedExisting, name)
	}
	buffer.Reset(managedExisting)
	uc.reportApplyProgress(ApplyProgressEvent{
		Type:      ApplyProgressEventTypeResetCompleted,
		BoneCount: len(managedExisting),
	})

	// HingeMapBuilt: 決定表を構築または再利用する
	hingeMap, hingeWarnings := uc.HingeMap()
	warnings = append(warnings, hingeWarnings...)
	uc.reportApplyProgress(ApplyProgressEvent{
		Type:       ApplyProgressEventTypeHingeMapBuilt,
		BoneCount:  len(managedExisting),
		HingeCount: len(hingeMap),
	})

	// Writing: 正規順に書き込む
	orderedTargets, targetDegrees := uc.collectApplyTargets(pose)
	entryDone := 0
	for _, name := range orderedTargets {
		if !uc.skeleton.ContainsByName(name) {
			warnings = append(warnings, model.NewPoseWarning(
				model.PoseWarningMissingPoseBone, name, "姿勢対象ボーンがスケルトンにありません"))
			continue
		}

		degrees := targetDegrees[name]
		decision, exists := hingeMap[name]
		if !exists {
			// 管理外の姿勢対象でも回転制限によるヒンジ推定は効かせる。
			// 形状推定はヒンジ対の子に限る契約なので、ここでは明示指定→制限のみ評価する。
			decision = uc.resolveHingeFor(name, nil, &warnings)
		}

		if decision.IsHinge() {
			flexDegree := extractFlexDegree(uc.config.FlexPolicy, degrees)
			buffer.AddAxis(name, decision.Axis, mmath.DegToRad(flexDegree*decision.Sign))
		} else {
			buffer.Set(name, [3]float64{
				mmath.DegToRad(degrees[0]),
				mmath.DegToRad(degrees[1]),
				mmath.DegToRad(degrees[2]),
			})
		}

		entryDone++
		uc.reportApplyProgress(ApplyProgressEvent{
			Type:       ApplyProgressEventTypeEntryWritten,
			EntryTotal: len(orderedTargets),
			EntryDone:  entryDone,
		})
	}

	// Committed: 以降は呼び出し側がバッファを読み取れる
	uc.reportApplyProgress(ApplyProgressEvent{
		Type:       ApplyProgressEventTypeCommitted,
		BoneCount:  len(managedExisting),
		EntryTotal: len(orderedTargets),
		EntryDone:  entryDone,
	})
	logApplyInfo("姿勢適用完了: entries=%d applied=%d warnings=%d", len(orderedTargets), entryDone, len(warnings))
	return warnings, nil
}

// collectApplyTargets は鏡映置換を1回だけ適用した書き込み先と、管理順→残り昇順の処理順を返す。
func (uc *PoseUsecase) collectApplyTargets(pose model.Pose) ([]string, map[string][3]float64) {
	targetDegrees := make(map[string][3]float64, len(pose))
	for name, degrees := range pose {
		targetDegrees[uc.canonicalName(name)] = degrees
	}

	ordered := make([]string, 0, len(targetDegrees))
	seen := map[string]struct{}{}
	for _, name := range uc.config.ManagedBones {
		if _, exists := targetDegrees[name]; !exists {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}

	extras := make([]string, 0)
	for name := range targetDegrees {
		if _, exists := seen[name]; exists {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)
	return ordered, targetDegrees
}

// extractFlexDegree は3成分からヒンジ用スカラー値を抽出する。
func extractFlexDegree(policy model.FlexPolicy, degrees [3]float64) float64 {
	if policy == model.FLEX_POLICY_FIRST_NONZERO {
		for _, value := range degrees {
			if value != 0 {
				return value
			}
		}
		return 0
	}
	// FLEX_POLICY_PREFER_Y: 作者はヒンジの曲げ量をY成分へ書く規約。零ならX/Zの大きい方。
	if degrees[1] != 0 {
		return degrees[1]
	}
	if math.Abs(degrees[0]) >= math.Abs(degrees[2]) {
		return degrees[0]
	}
	return degrees[2]
}

// logApplyInfo は情報ログを出力する。
func logApplyInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}

// logApplyDebug はデバッグログを出力する。
func logApplyDebug(format string, params ...any) {
	logging.DefaultLogger().Debug(format, params...)
}
