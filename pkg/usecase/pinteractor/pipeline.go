// 指示: miu200521358
package pinteractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
	"github.com/miu200521358/mu_pose_fk/pkg/usecase/port/poutput"
)

// PosePipelineDeps は姿勢適用パイプラインの依存を表す。
type PosePipelineDeps struct {
	SkeletonReader poutput.ISkeletonReader
	PoseReader     poutput.IPoseReader
	PoseWriter     poutput.IPoseWriter
	ConfigReader   poutput.IConfigReader
}

// PosePipeline は入力読み込みから適用結果保存までをまとめたユースケースを表す。
type PosePipeline struct {
	skeletonReader poutput.ISkeletonReader
	poseReader     poutput.IPoseReader
	poseWriter     poutput.IPoseWriter
	configReader   poutput.IConfigReader
}

// ApplyRequest は姿勢適用パイプラインの入力を表す。
type ApplyRequest struct {
	ArmaturePath     string
	PosePath         string
	ConfigPath       string
	OutputPath       string
	ProgressReporter IApplyProgressReporter
}

// ApplyResult は姿勢適用パイプラインの結果を表す。
type ApplyResult struct {
	Buffer     *model.PoseBuffer
	Warnings   []model.PoseWarning
	OutputPath string
}

// NewPosePipeline は姿勢適用パイプラインを生成する。
func NewPosePipeline(deps PosePipelineDeps) *PosePipeline {
	return &PosePipeline{
		skeletonReader: deps.SkeletonReader,
		poseReader:     deps.PoseReader,
		poseWriter:     deps.PoseWriter,
		configReader:   deps.ConfigReader,
	}
}

// LoadSkeleton はスケルトン入力を読み込む。
func (p *PosePipeline) LoadSkeleton(path string) (*model.Skeleton, error) {
	if p.skeletonReader == nil {
		return nil, fmt.Errorf("スケルトン読み込みリポジトリが設定されていません")
	}
	if !p.skeletonReader.CanLoad(path) {
		return nil, fmt.Errorf("スケルトン入力形式が未対応です: %s", path)
	}
	return p.skeletonReader.Load(path)
}

// LoadPose は姿勢入力を読み込む。
func (p *PosePipeline) LoadPose(path string) (model.Pose, error) {
	if p.poseReader == nil {
		return nil, fmt.Errorf("ポーズ読み込みリポジトリが設定されていません")
	}
	if !p.poseReader.CanLoad(path) {
		return nil, fmt.Errorf("ポーズ入力形式が未対応です: %s", path)
	}
	return p.poseReader.Load(path)
}

// LoadConfig は設定入力を読み込む。パスが空なら既定設定を返す。
func (p *PosePipeline) LoadConfig(path string) (*model.PoseConfig, error) {
	if strings.TrimSpace(path) == "" {
		return model.DefaultPoseConfig(), nil
	}
	if p.configReader == nil {
		return nil, fmt.Errorf("設定読み込みリポジトリが設定されていません")
	}
	if !p.configReader.CanLoad(path) {
		return nil, fmt.Errorf("設定形式が未対応です: %s", path)
	}
	return p.configReader.Load(path)
}

// SaveBuffer は適用結果バッファを保存する。
func (p *PosePipeline) SaveBuffer(path string, buffer *model.PoseBuffer) error {
	if p.poseWriter == nil {
		return fmt.Errorf("保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if buffer == nil {
		return fmt.Errorf("保存対象バッファが未設定です")
	}
	return p.poseWriter.Save(path, buffer)
}

// Apply は入力を読み込み、姿勢を適用して保存する。
func (p *PosePipeline) Apply(request ApplyRequest) (*ApplyResult, error) {
	if strings.TrimSpace(request.ArmaturePath) == "" {
		return nil, fmt.Errorf("アーマチュアレポートパスが未指定です")
	}
	if strings.TrimSpace(request.PosePath) == "" {
		return nil, fmt.Errorf("ポーズパスが未指定です")
	}

	outputPath, err := resolveApplyOutputPath(request.PosePath, request.OutputPath)
	if err != nil {
		return nil, err
	}

	skeleton, err := p.LoadSkeleton(request.ArmaturePath)
	if err != nil {
		return nil, fmt.Errorf("アーマチュアレポートの読み込みに失敗しました: %w", err)
	}
	pose, err := p.LoadPose(request.PosePath)
	if err != nil {
		return nil, fmt.Errorf("ポーズの読み込みに失敗しました: %w", err)
	}
	config, err := p.LoadConfig(request.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}

	usecase, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		return nil, fmt.Errorf("姿勢適用の初期化に失敗しました: %w", err)
	}
	if request.ProgressReporter != nil {
		usecase.SetProgressReporter(request.ProgressReporter)
	}

	buffer := model.NewPoseBuffer()
	warnings, err := usecase.ApplyPose(buffer, pose)
	if err != nil {
		return nil, fmt.Errorf("姿勢適用に失敗しました: %w", err)
	}

	if err := p.SaveBuffer(outputPath, buffer); err != nil {
		return nil, fmt.Errorf("適用結果の保存に失敗しました: %w", err)
	}

	return &ApplyResult{
		Buffer:     buffer,
		Warnings:   warnings,
		OutputPath: outputPath,
	}, nil
}

// resolveApplyOutputPath は保存先パスを解決し、拡張子を検証する。
func resolveApplyOutputPath(posePath string, outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		dir := filepath.Dir(posePath)
		base := strings.TrimSuffix(filepath.Base(posePath), filepath.Ext(posePath))
		resolved = filepath.Join(dir, base+"_applied.json")
	}
	if !strings.EqualFold(filepath.Ext(resolved), ".json") {
		return "", fmt.Errorf("保存先拡張子が .json ではありません: %s", resolved)
	}
	return resolved, nil
}
