// 指示: miu200521358
// Package posefile はポーズJSONの入出力を提供する。
package posefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
)

// PoseRepository はポーズファイルの入出力契約を表す。
type PoseRepository struct{}

// NewPoseRepository はPoseRepositoryを生成する。
func NewPoseRepository() *PoseRepository {
	return &PoseRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *PoseRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// InferName はパスから表示名を推定する。
func (r *PoseRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はポーズJSONを読み込む。値は度単位のオイラー角3要素。
func (r *PoseRepository) Load(path string) (model.Pose, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ポーズファイルの読み取りに失敗しました: %w", err)
	}

	raw := map[string][]float64{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("ポーズJSONの解析に失敗しました: %w", err)
	}

	pose := model.Pose{}
	for name, values := range raw {
		if name == "" {
			return nil, fmt.Errorf("ポーズのボーン名が未設定です")
		}
		if len(values) != 3 {
			return nil, fmt.Errorf("ポーズ回転の要素数が不正です (bone=%s): %d", name, len(values))
		}
		pose[name] = [3]float64{values[0], values[1], values[2]}
	}

	logPoseInfo("ポーズ読込完了: file=%s entries=%d", filepath.Base(path), len(pose))
	return pose, nil
}

// Save は適用後バッファをJSONへ書き出す。値はラジアン単位。
func (r *PoseRepository) Save(path string, buffer *model.PoseBuffer) error {
	if buffer == nil {
		return fmt.Errorf("保存対象のバッファがnilです")
	}

	raw := map[string][3]float64{}
	for _, name := range buffer.Names() {
		rotation, _ := buffer.Get(name)
		raw[name] = rotation
	}

	b, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("ポーズJSONの生成に失敗しました: %w", err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("ポーズファイルの書き込みに失敗しました: %w", err)
	}

	logPoseInfo("ポーズ保存完了: file=%s entries=%d", filepath.Base(path), buffer.Len())
	return nil
}

// logPoseInfo は情報ログを出力する。
func logPoseInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}
