// 指示: miu200521358
package model

import "fmt"

// Skeleton はレスト姿勢のボーン階層スナップショットを表す。
type Skeleton struct {
	bones       []*Bone
	nameIndexes map[string]int
}

// NewSkeleton は空のSkeletonを生成する。
func NewSkeleton() *Skeleton {
	return &Skeleton{
		bones:       make([]*Bone, 0),
		nameIndexes: map[string]int{},
	}
}

// AppendBone はボーンを末尾へ追加する。名前重複はエラー。
func (s *Skeleton) AppendBone(bone *Bone) error {
	if bone == nil {
		return fmt.Errorf("追加対象ボーンがnilです")
	}
	if bone.Name == "" {
		return fmt.Errorf("ボーン名が未設定です")
	}
	if _, exists := s.nameIndexes[bone.Name]; exists {
		return fmt.Errorf("ボーン名が重複しています: %s", bone.Name)
	}
	s.nameIndexes[bone.Name] = len(s.bones)
	s.bones = append(s.bones, bone)
	return nil
}

// Len はボーン数を返す。
func (s *Skeleton) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bones)
}

// Get はindex指定でボーンを返す。
func (s *Skeleton) Get(index int) (*Bone, error) {
	if s == nil || index < 0 || index >= len(s.bones) {
		return nil, fmt.Errorf("ボーンindexが範囲外です: %d", index)
	}
	return s.bones[index], nil
}

// GetByName は名前指定でボーンを返す。
func (s *Skeleton) GetByName(name string) (*Bone, error) {
	if s == nil {
		return nil, fmt.Errorf("スケルトンがnilです")
	}
	index, exists := s.nameIndexes[name]
	if !exists {
		return nil, fmt.Errorf("ボーンが見つかりません: %s", name)
	}
	return s.bones[index], nil
}

// ContainsByName は名前のボーンが存在するか判定する。
func (s *Skeleton) ContainsByName(name string) bool {
	if s == nil {
		return false
	}
	_, exists := s.nameIndexes[name]
	return exists
}

// Names は登録順のボーン名一覧を返す。
func (s *Skeleton) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.bones))
	for _, bone := range s.bones {
		names = append(names, bone.Name)
	}
	return names
}

// Validate は親参照の存在と木構造(循環なし)を検証する。
func (s *Skeleton) Validate() error {
	if s == nil {
		return fmt.Errorf("スケルトンがnilです")
	}
	for _, bone := range s.bones {
		if bone.ParentName == "" {
			continue
		}
		if !s.ContainsByName(bone.ParentName) {
			return fmt.Errorf("親ボーンが見つかりません: %s (子=%s)", bone.ParentName, bone.Name)
		}
	}
	for _, bone := range s.bones {
		visited := map[string]struct{}{}
		current := bone
		for current.ParentName != "" {
			if _, exists := visited[current.Name]; exists {
				return fmt.Errorf("親子関係に循環があります: %s", bone.Name)
			}
			visited[current.Name] = struct{}{}
			parent, err := s.GetByName(current.ParentName)
			if err != nil {
				return err
			}
			current = parent
		}
	}
	return nil
}
