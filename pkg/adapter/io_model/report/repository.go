// 指示: miu200521358
// Package report はアーマチュアレポートJSONの読み込みを提供する。
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
)

const (
	matrixLocalLength = 16
	limitRotationType = "LIMIT_ROTATION"
)

// armatureReport はレポートJSONの全体を表す。
type armatureReport struct {
	ArmatureObject string       `json:"armature_object"`
	Bones          []reportBone `json:"bones"`
}

// reportBone はレポートJSONのボーン1件を表す。
type reportBone struct {
	Name        string             `json:"name"`
	Parent      *string            `json:"parent"`
	Rest        reportRest         `json:"rest"`
	Constraints []reportConstraint `json:"constraints"`
}

// reportRest はレスト姿勢データを表す。matrix_localは4x4行優先の平坦配列。
type reportRest struct {
	HeadLocal   []float64 `json:"head_local"`
	TailLocal   []float64 `json:"tail_local"`
	MatrixLocal []float64 `json:"matrix_local"`
}

// reportConstraint はコンストレイント1件の安全部分集合を表す。
type reportConstraint struct {
	Type      string   `json:"type"`
	Mute      bool     `json:"mute"`
	UseLimitX *bool    `json:"use_limit_x"`
	UseLimitY *bool    `json:"use_limit_y"`
	UseLimitZ *bool    `json:"use_limit_z"`
	MinX      *float64 `json:"min_x"`
	MinY      *float64 `json:"min_y"`
	MinZ      *float64 `json:"min_z"`
	MaxX      *float64 `json:"max_x"`
	MaxY      *float64 `json:"max_y"`
	MaxZ      *float64 `json:"max_z"`
}

// ReportRepository はアーマチュアレポート入力の読み込み契約を表す。
type ReportRepository struct{}

// NewReportRepository はReportRepositoryを生成する。
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *ReportRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// InferName はパスから表示名を推定する。
func (r *ReportRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はレポートJSONを読み込み、検証済みスケルトンを返す。
func (r *ReportRepository) Load(path string) (*model.Skeleton, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	logReportInfo("レポート読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("レポートファイルの読み取りに失敗しました: %w", err)
	}

	doc := armatureReport{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("レポートJSONの解析に失敗しました: %w", err)
	}
	if len(doc.Bones) == 0 {
		return nil, fmt.Errorf("レポートにボーンがありません: %s", path)
	}

	skeleton := model.NewSkeleton()
	for _, entry := range doc.Bones {
		bone, err := buildBone(entry)
		if err != nil {
			return nil, err
		}
		if err := skeleton.AppendBone(bone); err != nil {
			return nil, err
		}
	}
	if err := skeleton.Validate(); err != nil {
		return nil, fmt.Errorf("スケルトン検証に失敗しました: %w", err)
	}

	logReportInfo("レポート読込完了: armature=%s bones=%d", doc.ArmatureObject, skeleton.Len())
	return skeleton, nil
}

// buildBone はレポート1件からボーンを構築する。
func buildBone(entry reportBone) (*model.Bone, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("レポートのボーン名が未設定です")
	}

	bone := model.NewBoneByName(entry.Name)
	if entry.Parent != nil {
		bone.ParentName = *entry.Parent
	}

	head, err := toVec3(entry.Rest.HeadLocal)
	if err != nil {
		return nil, fmt.Errorf("head_localが不正です (bone=%s): %w", entry.Name, err)
	}
	tail, err := toVec3(entry.Rest.TailLocal)
	if err != nil {
		return nil, fmt.Errorf("tail_localが不正です (bone=%s): %w", entry.Name, err)
	}
	bone.Head = head
	bone.Tail = tail

	if len(entry.Rest.MatrixLocal) > 0 {
		if len(entry.Rest.MatrixLocal) != matrixLocalLength {
			return nil, fmt.Errorf("matrix_local長が不正です (bone=%s): %d", entry.Name, len(entry.Rest.MatrixLocal))
		}
		// 行優先4x4の回転部の列がローカル軸に対応する
		m := entry.Rest.MatrixLocal
		bone.LocalAxisX = mmath.NewVec3(m[0], m[4], m[8]).Normalized()
		bone.LocalAxisY = mmath.NewVec3(m[1], m[5], m[9]).Normalized()
		bone.LocalAxisZ = mmath.NewVec3(m[2], m[6], m[10]).Normalized()
	}

	bone.Limit = buildRotationLimit(entry.Constraints)
	return bone, nil
}

// buildRotationLimit は最初の有効なLIMIT_ROTATIONを型付き制限へ変換する。該当なしはnil。
func buildRotationLimit(constraints []reportConstraint) *model.RotationLimit {
	for _, constraint := range constraints {
		if constraint.Type != limitRotationType || constraint.Mute {
			continue
		}
		return &model.RotationLimit{
			X: buildAxisLimit(constraint.UseLimitX, constraint.MinX, constraint.MaxX),
			Y: buildAxisLimit(constraint.UseLimitY, constraint.MinY, constraint.MaxY),
			Z: buildAxisLimit(constraint.UseLimitZ, constraint.MinZ, constraint.MaxZ),
		}
	}
	return nil
}

// buildAxisLimit は1軸分の制限値を変換する。欠落フィールドは零として扱う。
func buildAxisLimit(enabled *bool, min *float64, max *float64) model.AxisLimit {
	limit := model.AxisLimit{}
	if enabled != nil {
		limit.Enabled = *enabled
	}
	if min != nil {
		limit.Min = *min
	}
	if max != nil {
		limit.Max = *max
	}
	return limit
}

// toVec3 は3要素配列をVec3へ変換する。
func toVec3(values []float64) (mmath.Vec3, error) {
	if len(values) != 3 {
		return mmath.Vec3{}, fmt.Errorf("要素数が3ではありません: %d", len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// logReportInfo は情報ログを出力する。
func logReportInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}
