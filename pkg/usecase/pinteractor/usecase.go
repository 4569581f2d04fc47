// 指示: miu200521358
package pinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
)

// PoseUsecase はFK姿勢適用ユースケースを表す。
// ヒンジ軸決定表はスケルトン・設定が変わらない限り再利用する。
type PoseUsecase struct {
	skeleton         *model.Skeleton
	config           *model.PoseConfig
	mirror           *model.MirrorMap
	progressReporter IApplyProgressReporter
	hingeMap         map[string]model.HingeDecision
	hingeWarnings    []model.PoseWarning
	hingeDirty       bool
}

// NewPoseUsecase は検証済みスケルトンと正規化済み設定からユースケースを生成する。
func NewPoseUsecase(skeleton *model.Skeleton, config *model.PoseConfig) (*PoseUsecase, error) {
	uc := &PoseUsecase{}
	if err := uc.SetSkeleton(skeleton); err != nil {
		return nil, err
	}
	if err := uc.SetConfig(config); err != nil {
		return nil, err
	}
	return uc, nil
}

// SetSkeleton はスケルトンを差し替え、ヒンジ軸決定表を無効化する。
func (uc *PoseUsecase) SetSkeleton(skeleton *model.Skeleton) error {
	if skeleton == nil || skeleton.Len() == 0 {
		return fmt.Errorf("スケルトンが未設定です")
	}
	if err := skeleton.Validate(); err != nil {
		return fmt.Errorf("スケルトン検証に失敗しました: %w", err)
	}
	uc.skeleton = skeleton
	uc.hingeDirty = true
	return nil
}

// SetConfig は設定を複製して差し替え、ヒンジ軸決定表を無効化する。nilは既定設定。
func (uc *PoseUsecase) SetConfig(config *model.PoseConfig) error {
	normalized, err := config.Normalized()
	if err != nil {
		return err
	}
	uc.config = normalized
	uc.mirror = model.NewMirrorMap(normalized.MirrorNames)
	uc.hingeDirty = true
	return nil
}

// Config は正規化済み設定を返す。呼び出し側は読み取り専用として扱う。
func (uc *PoseUsecase) Config() *model.PoseConfig {
	return uc.config
}

// SetProgressReporter は進捗通知先を設定する。
func (uc *PoseUsecase) SetProgressReporter(reporter IApplyProgressReporter) {
	if uc == nil {
		return
	}
	uc.progressReporter = reporter
}

// HingeMap はヒンジ軸決定表を返す。未構築または無効化済みなら構築する。
// 返却値は同一スケルトンスナップショット上で読み取り専用共有できる。
func (uc *PoseUsecase) HingeMap() (map[string]model.HingeDecision, []model.PoseWarning) {
	if uc.hingeDirty || uc.hingeMap == nil {
		uc.hingeMap, uc.hingeWarnings = uc.buildHingeMap()
		uc.hingeDirty = false
	}
	return uc.hingeMap, uc.hingeWarnings
}

// canonicalName は鏡映有効時に左右対応へ1回だけ置換した書き込み先名を返す。
func (uc *PoseUsecase) canonicalName(name string) string {
	if uc.config == nil || !uc.config.Mirror {
		return name
	}
	return uc.mirror.Resolve(name)
}

// reportApplyProgress は進捗イベントを通知する。
func (uc *PoseUsecase) reportApplyProgress(event ApplyProgressEvent) {
	if uc.progressReporter == nil {
		return
	}
	uc.progressReporter.ReportApplyProgress(event)
}
