// 指示: miu200521358
package pinteractor

import (
	"testing"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
)

// newArmSkeleton は肘相当の2ボーンスケルトンを生成する。
// 親は真下向き、子は手前向きで、曲げ平面の法線はX軸に一致する。
func newArmSkeleton(t *testing.T) *model.Skeleton {
	t.Helper()
	skeleton := model.NewSkeleton()

	upperarm := model.NewBoneByName("upperarm")
	upperarm.Head = mmath.NewVec3(0, 0, 0)
	upperarm.Tail = mmath.NewVec3(0, -1, 0)

	lowerarm := model.NewBoneByName("lowerarm")
	lowerarm.ParentName = "upperarm"
	lowerarm.Head = mmath.NewVec3(0, -1, 0)
	lowerarm.Tail = mmath.NewVec3(0, -1, -1)

	for _, bone := range []*model.Bone{upperarm, lowerarm} {
		if err := skeleton.AppendBone(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	return skeleton
}

func newArmConfig() *model.PoseConfig {
	return &model.PoseConfig{
		ManagedBones: []string{"upperarm", "lowerarm"},
		HingePairs:   []model.HingePair{{ParentName: "upperarm", ChildName: "lowerarm"}},
	}
}

func TestResolveFromGeometryFindsBendNormalAxis(t *testing.T) {
	skeleton := newArmSkeleton(t)
	parent, _ := skeleton.GetByName("upperarm")
	child, _ := skeleton.GetByName("lowerarm")

	axis := resolveFromGeometry(parent, child)
	if axis != model.AXIS_X {
		t.Fatalf("expected X axis, got %s", axis)
	}
}

func TestResolveFromGeometryIsDeterministic(t *testing.T) {
	skeleton := newArmSkeleton(t)
	parent, _ := skeleton.GetByName("upperarm")
	child, _ := skeleton.GetByName("lowerarm")

	first := resolveFromGeometry(parent, child)
	for i := 0; i < 10; i++ {
		if got := resolveFromGeometry(parent, child); got != first {
			t.Fatalf("geometry resolution should be pure: %s != %s", got, first)
		}
	}
}

func TestResolveFromGeometryCollinearFallsBackToOrthogonalAxis(t *testing.T) {
	skeleton := model.NewSkeleton()

	parent := model.NewBoneByName("spine")
	parent.Head = mmath.NewVec3(0, 0, 0)
	parent.Tail = mmath.NewVec3(0, 1, 0)

	child := model.NewBoneByName("spine1")
	child.ParentName = "spine"
	child.Head = mmath.NewVec3(0, 1, 0)
	child.Tail = mmath.NewVec3(0, 2, 0)

	for _, bone := range []*model.Bone{parent, child} {
		if err := skeleton.AppendBone(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	// 一直線なので曲げ平面は未定義。ボーン方向(Y)と直交するX軸が先勝ちで選ばれる。
	axis := resolveFromGeometry(parent, child)
	if axis != model.AXIS_X {
		t.Fatalf("expected X axis fallback, got %s", axis)
	}
}

func TestResolveFromConstraintsSingleFreeAxis(t *testing.T) {
	bone := model.NewBoneByName("lowerarm")
	bone.Limit = &model.RotationLimit{
		X: model.AxisLimit{Enabled: true, Min: 0, Max: 0},
		Y: model.AxisLimit{Enabled: false},
		Z: model.AxisLimit{Enabled: true, Min: 0, Max: 0},
	}

	axis, ok := resolveFromConstraints(bone)
	if !ok || axis != model.AXIS_Y {
		t.Fatalf("expected conclusive Y axis, got %s ok=%v", axis, ok)
	}
}

func TestResolveFromConstraintsInconclusiveCases(t *testing.T) {
	// 制限なし
	if _, ok := resolveFromConstraints(model.NewBoneByName("free")); ok {
		t.Fatalf("bone without limit should be inconclusive")
	}

	// 全軸ロック: 自由軸0本
	allLocked := model.NewBoneByName("locked")
	allLocked.Limit = &model.RotationLimit{
		X: model.AxisLimit{Enabled: true},
		Y: model.AxisLimit{Enabled: true},
		Z: model.AxisLimit{Enabled: true},
	}
	if _, ok := resolveFromConstraints(allLocked); ok {
		t.Fatalf("zero free axes should be inconclusive")
	}

	// 2軸自由: 可動域を持つ軸はロック扱いしない
	twoFree := model.NewBoneByName("ranged")
	twoFree.Limit = &model.RotationLimit{
		X: model.AxisLimit{Enabled: true, Min: -0.1, Max: 0.1},
		Y: model.AxisLimit{Enabled: false},
		Z: model.AxisLimit{Enabled: true},
	}
	if _, ok := resolveFromConstraints(twoFree); ok {
		t.Fatalf("two free axes should be inconclusive")
	}
}

func TestHingeMapConstraintWinsOverGeometry(t *testing.T) {
	skeleton := newArmSkeleton(t)
	lowerarm, _ := skeleton.GetByName("lowerarm")
	lowerarm.Limit = &model.RotationLimit{
		X: model.AxisLimit{Enabled: true, Min: 0, Max: 0},
		Z: model.AxisLimit{Enabled: true, Min: 0, Max: 0},
	}

	uc, err := NewPoseUsecase(skeleton, newArmConfig())
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, warnings := uc.HingeMap()
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	decision := hingeMap["lowerarm"]
	if decision.Axis != model.AXIS_Y {
		t.Fatalf("expected constraint axis Y, got %s", decision.Axis)
	}
	if decision.Source != model.HINGE_SOURCE_CONSTRAINT {
		t.Fatalf("expected constraint source, got %s", decision.Source)
	}
}

func TestHingeMapAmbiguousConstraintFallsBackToGeometry(t *testing.T) {
	skeleton := newArmSkeleton(t)
	lowerarm, _ := skeleton.GetByName("lowerarm")
	// 全軸自由の制限は判定不能でレスト形状へ落ちる
	lowerarm.Limit = &model.RotationLimit{}

	uc, err := NewPoseUsecase(skeleton, newArmConfig())
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, _ := uc.HingeMap()
	decision := hingeMap["lowerarm"]
	if decision.Axis != model.AXIS_X {
		t.Fatalf("expected geometry axis X, got %s", decision.Axis)
	}
	if decision.Source != model.HINGE_SOURCE_GEOMETRY {
		t.Fatalf("expected geometry source, got %s", decision.Source)
	}
}

func TestHingeMapOverridePrecedence(t *testing.T) {
	skeleton := newArmSkeleton(t)
	config := newArmConfig()
	config.HingeAxisOverrides = map[string]string{"lowerarm": "Z"}

	uc, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, _ := uc.HingeMap()
	decision := hingeMap["lowerarm"]
	if decision.Axis != model.AXIS_Z {
		t.Fatalf("override should win: got %s", decision.Axis)
	}
	if decision.Source != model.HINGE_SOURCE_OVERRIDE {
		t.Fatalf("expected override source, got %s", decision.Source)
	}
}

func TestHingeMapInvalidOverrideFallsThrough(t *testing.T) {
	skeleton := newArmSkeleton(t)
	config := newArmConfig()
	config.HingeAxisOverrides = map[string]string{"lowerarm": "W"}

	uc, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, warnings := uc.HingeMap()
	decision := hingeMap["lowerarm"]
	if decision.Source != model.HINGE_SOURCE_GEOMETRY {
		t.Fatalf("invalid override should fall through to geometry, got %s", decision.Source)
	}

	found := false
	for _, warning := range warnings {
		if warning.ID == model.PoseWarningInvalidAxisOverride && warning.BoneName == "lowerarm" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid override warning: %v", warnings)
	}
}

func TestHingeMapSignOverride(t *testing.T) {
	skeleton := newArmSkeleton(t)
	config := newArmConfig()
	config.HingeSignOverrides = map[string]float64{"lowerarm": -1}

	uc, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, _ := uc.HingeMap()
	if hingeMap["lowerarm"].Sign != -1 {
		t.Fatalf("sign override should apply: %f", hingeMap["lowerarm"].Sign)
	}
}

func TestHingeMapInvalidSignOverrideWarnsAndDefaults(t *testing.T) {
	skeleton := newArmSkeleton(t)
	config := newArmConfig()
	config.HingeSignOverrides = map[string]float64{"lowerarm": 0.5}

	uc, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	hingeMap, warnings := uc.HingeMap()
	if hingeMap["lowerarm"].Sign != 1 {
		t.Fatalf("invalid sign should default to +1: %f", hingeMap["lowerarm"].Sign)
	}
	found := false
	for _, warning := range warnings {
		if warning.ID == model.PoseWarningInvalidSignOverride {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid sign warning: %v", warnings)
	}
}

func TestHingeMapMissingPairBoneWarns(t *testing.T) {
	skeleton := newArmSkeleton(t)
	config := newArmConfig()
	config.HingePairs = append(config.HingePairs, model.HingePair{ParentName: "upperarm", ChildName: "hand"})

	uc, err := NewPoseUsecase(skeleton, config)
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	_, warnings := uc.HingeMap()
	found := false
	for _, warning := range warnings {
		if warning.ID == model.PoseWarningMissingHingePairBone && warning.BoneName == "hand" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing pair bone warning: %v", warnings)
	}
}

func TestHingeMapIsCachedUntilConfigChanges(t *testing.T) {
	skeleton := newArmSkeleton(t)
	uc, err := NewPoseUsecase(skeleton, newArmConfig())
	if err != nil {
		t.Fatalf("usecase build failed: %v", err)
	}

	first, _ := uc.HingeMap()
	second, _ := uc.HingeMap()
	if len(first) != len(second) {
		t.Fatalf("hinge map should be stable")
	}
	if first["lowerarm"] != second["lowerarm"] {
		t.Fatalf("cached decision should not change")
	}

	config := newArmConfig()
	config.HingeAxisOverrides = map[string]string{"lowerarm": "Z"}
	if err := uc.SetConfig(config); err != nil {
		t.Fatalf("set config failed: %v", err)
	}
	rebuilt, _ := uc.HingeMap()
	if rebuilt["lowerarm"].Axis != model.AXIS_Z {
		t.Fatalf("config change should invalidate cached map: %s", rebuilt["lowerarm"].Axis)
	}
}
