// 指示: miu200521358
package poutput

import "github.com/miu200521358/mu_pose_fk/pkg/domain/model"

// ISkeletonReader はスケルトン入力の読み込み契約を表す。
type ISkeletonReader interface {
	// CanLoad は読み込み可否を判定する。
	CanLoad(path string) bool
	// Load はスケルトンを読み込む。
	Load(path string) (*model.Skeleton, error)
}

// IPoseReader は姿勢入力の読み込み契約を表す。
type IPoseReader interface {
	// CanLoad は読み込み可否を判定する。
	CanLoad(path string) bool
	// Load は姿勢を読み込む。
	Load(path string) (model.Pose, error)
}

// IPoseWriter は適用結果の書き込み契約を表す。
type IPoseWriter interface {
	// Save はバッファ内容を書き出す。
	Save(path string, buffer *model.PoseBuffer) error
}

// IConfigReader は適用設定の読み込み契約を表す。
type IConfigReader interface {
	// CanLoad は読み込み可否を判定する。
	CanLoad(path string) bool
	// Load は適用設定を読み込む。
	Load(path string) (*model.PoseConfig, error)
}
