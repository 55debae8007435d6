package service

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(4)

	digest, err := hasher.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("digest must not equal the plaintext")
	}

	if !hasher.Verify("s3cret-pass", digest) {
		t.Fatalf("correct password rejected")
	}
	if hasher.Verify("wrong-pass", digest) {
		t.Fatalf("wrong password accepted")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(4)
	if hasher.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest accepted")
	}
	if hasher.Verify("anything", "") {
		t.Fatalf("empty digest accepted")
	}
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("same-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash("same-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
}
