// 指示: miu200521358
package model

import "testing"

func TestMirrorMapResolveSwapsSides(t *testing.T) {
	mirror := NewMirrorMap(nil)
	if got := mirror.Resolve("LeftForeArm"); got != "RightForeArm" {
		t.Fatalf("mirror mismatch: %s", got)
	}
	if got := mirror.Resolve("RightForeArm"); got != "LeftForeArm" {
		t.Fatalf("mirror mismatch: %s", got)
	}
}

func TestMirrorMapResolveKeepsUnmappedName(t *testing.T) {
	mirror := NewMirrorMap(nil)
	if got := mirror.Resolve("Spine"); got != "Spine" {
		t.Fatalf("unmapped name should stay: %s", got)
	}
}

func TestMirrorMapResolveTwiceReturnsOriginal(t *testing.T) {
	mirror := NewMirrorMap(nil)
	once := mirror.Resolve("LeftLeg")
	twice := mirror.Resolve(once)
	if twice != "LeftLeg" {
		t.Fatalf("double resolve should return original: %s", twice)
	}
}

func TestMirrorMapCopiesSourceTable(t *testing.T) {
	source := map[string]string{"leftKnee": "rightKnee"}
	mirror := NewMirrorMap(source)
	source["leftKnee"] = "corrupted"
	if got := mirror.Resolve("leftKnee"); got != "rightKnee" {
		t.Fatalf("mirror map should copy its table: %s", got)
	}
}
