// 指示: miu200521358
package model

import (
	"strings"
	"testing"

	"github.com/miu200521358/mu_pose_fk/pkg/domain/mmath"
)

func newTestArmSkeleton(t *testing.T) *Skeleton {
	t.Helper()
	skeleton := NewSkeleton()

	upperarm := NewBoneByName("upperarm")
	upperarm.Head = mmath.NewVec3(0, 0, 0)
	upperarm.Tail = mmath.NewVec3(0, -1, 0)

	lowerarm := NewBoneByName("lowerarm")
	lowerarm.ParentName = "upperarm"
	lowerarm.Head = mmath.NewVec3(0, -1, 0)
	lowerarm.Tail = mmath.NewVec3(0, -1, -1)

	for _, bone := range []*Bone{upperarm, lowerarm} {
		if err := skeleton.AppendBone(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	return skeleton
}

func TestSkeletonAppendBoneRejectsDuplicateName(t *testing.T) {
	skeleton := newTestArmSkeleton(t)
	err := skeleton.AppendBone(NewBoneByName("upperarm"))
	if err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if !strings.Contains(err.Error(), "upperarm") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSkeletonGetByName(t *testing.T) {
	skeleton := newTestArmSkeleton(t)
	bone, err := skeleton.GetByName("lowerarm")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if bone.ParentName != "upperarm" {
		t.Fatalf("parent mismatch: %s", bone.ParentName)
	}
	if _, err := skeleton.GetByName("missing"); err == nil {
		t.Fatalf("expected lookup error for missing bone")
	}
}

func TestSkeletonValidateDetectsMissingParent(t *testing.T) {
	skeleton := NewSkeleton()
	orphan := NewBoneByName("hand")
	orphan.ParentName = "forearm"
	if err := skeleton.AppendBone(orphan); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := skeleton.Validate(); err == nil {
		t.Fatalf("expected missing parent error")
	}
}

func TestSkeletonValidateDetectsCycle(t *testing.T) {
	skeleton := NewSkeleton()
	first := NewBoneByName("first")
	first.ParentName = "second"
	second := NewBoneByName("second")
	second.ParentName = "first"
	for _, bone := range []*Bone{first, second} {
		if err := skeleton.AppendBone(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if err := skeleton.Validate(); err == nil {
		t.Fatalf("expected cycle error")
	}
}

func TestBoneDirection(t *testing.T) {
	skeleton := newTestArmSkeleton(t)
	bone, err := skeleton.GetByName("lowerarm")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	direction := bone.Direction()
	if !direction.NearEquals(mmath.NewVec3(0, 0, -1), 1e-12) {
		t.Fatalf("direction mismatch: %v", direction)
	}
}
