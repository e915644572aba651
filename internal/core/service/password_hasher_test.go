package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected self-describing bcrypt digest, got %q", digest)
	}

	if !h.Check("s3cret-pass", digest) {
		t.Fatalf("Check rejected the correct password")
	}
	if h.Check("wrong-pass", digest) {
		t.Fatalf("Check accepted a wrong password")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher()

	if h.Check("anything", "not-a-bcrypt-digest") {
		t.Fatalf("Check must reject a malformed digest")
	}
	if h.Check("anything", "") {
		t.Fatalf("Check must reject an empty digest")
	}
}
