package credential

import "testing"

func TestDigest_KnownValue(t *testing.T) {
	// sha256("student123")
	want := "703b0a3d6ad75b649a28adde7d83c6251da457549263bc7ff45ec709b0a8448b"
	if got := Digest("student123"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestVerify(t *testing.T) {
	stored := Digest("admin123")

	if !Verify("admin123", stored) {
		t.Error("matching credential should verify")
	}
	if Verify("wrong-password", stored) {
		t.Error("mismatched credential should not verify")
	}
	if Verify("admin123", "not-a-digest") {
		t.Error("malformed stored digest should not verify")
	}
}
