// 指示: miu200521358
package model

import "testing"

func TestPoseWarningIDsAreNonEmptyAndUnique(t *testing.T) {
	warningIDs := []string{
		PoseWarningMissingPoseBone,
		PoseWarningMissingHingePairBone,
		PoseWarningMissingManagedBone,
		PoseWarningInvalidAxisOverride,
		PoseWarningInvalidSignOverride,
	}

	seen := map[string]struct{}{}
	for _, warningID := range warningIDs {
		if warningID == "" {
			t.Fatalf("warning id should not be empty")
		}
		if _, exists := seen[warningID]; exists {
			t.Fatalf("warning id should be unique: %s", warningID)
		}
		seen[warningID] = struct{}{}
	}
}

func TestPoseWarningStringContainsBoneName(t *testing.T) {
	warning := NewPoseWarning(PoseWarningMissingPoseBone, "LeftElbow", "bone not found")
	got := warning.String()
	if got != "[PoseWarningMissingPoseBone] LeftElbow: bone not found" {
		t.Fatalf("unexpected warning string: %s", got)
	}
}
