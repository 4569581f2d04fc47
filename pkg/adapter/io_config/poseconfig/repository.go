// 指示: miu200521358
// Package poseconfig は姿勢適用設定YAMLの入出力を提供する。
package poseconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
)

// configDocument は設定YAMLの構造を表す。
type configDocument struct {
	Mirror             bool               `yaml:"mirror"`
	MirrorNames        map[string]string  `yaml:"mirror_names,omitempty"`
	HingeAxisOverrides map[string]string  `yaml:"hinge_axis_overrides,omitempty"`
	HingeSignOverrides map[string]float64 `yaml:"hinge_sign_overrides,omitempty"`
	HingePairs         []hingePairEntry   `yaml:"hinge_pairs,omitempty"`
	ManagedBones       []string           `yaml:"managed_bones,omitempty"`
	FlexPolicy         string             `yaml:"flex_policy,omitempty"`
}

// hingePairEntry はヒンジ候補親子対1件を表す。
type hingePairEntry struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// ConfigRepository は設定ファイルの入出力契約を表す。
type ConfigRepository struct{}

// NewConfigRepository はConfigRepositoryを生成する。
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *ConfigRepository) CanLoad(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load は設定YAMLを読み込み、正規化済み設定を返す。
func (r *ConfigRepository) Load(path string) (*model.PoseConfig, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("設定形式が未対応です: %s", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み取りに失敗しました: %w", err)
	}

	doc := configDocument{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("設定YAMLの解析に失敗しました: %w", err)
	}

	config := &model.PoseConfig{
		Mirror:             doc.Mirror,
		MirrorNames:        doc.MirrorNames,
		HingeAxisOverrides: doc.HingeAxisOverrides,
		HingeSignOverrides: doc.HingeSignOverrides,
		ManagedBones:       doc.ManagedBones,
		FlexPolicy:         model.FlexPolicy(doc.FlexPolicy),
	}
	for _, pair := range doc.HingePairs {
		if pair.Parent == "" || pair.Child == "" {
			return nil, fmt.Errorf("ヒンジ対の親子名が未設定です: parent=%s child=%s", pair.Parent, pair.Child)
		}
		config.HingePairs = append(config.HingePairs, model.HingePair{
			ParentName: pair.Parent,
			ChildName:  pair.Child,
		})
	}

	normalized, err := config.Normalized()
	if err != nil {
		return nil, err
	}
	return normalized, nil
}

// Save は設定をYAMLへ書き出す。
func (r *ConfigRepository) Save(path string, config *model.PoseConfig) error {
	if config == nil {
		return fmt.Errorf("保存対象の設定がnilです")
	}

	doc := configDocument{
		Mirror:             config.Mirror,
		MirrorNames:        config.MirrorNames,
		HingeAxisOverrides: config.HingeAxisOverrides,
		HingeSignOverrides: config.HingeSignOverrides,
		ManagedBones:       config.ManagedBones,
		FlexPolicy:         string(config.FlexPolicy),
	}
	for _, pair := range config.HingePairs {
		doc.HingePairs = append(doc.HingePairs, hingePairEntry{
			Parent: pair.ParentName,
			Child:  pair.ChildName,
		})
	}

	b, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("設定YAMLの生成に失敗しました: %w", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
