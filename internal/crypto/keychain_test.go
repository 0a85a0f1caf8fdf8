package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateKeySalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateKeySalt()
	if err != nil {
		t.Fatalf("GenerateKeySalt error: %v", err)
	}
	s2, err := svc.GenerateKeySalt()
	if err != nil {
		t.Fatalf("GenerateKeySalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateVaultKey_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	k1, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}
	k2, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if len(k2) != 32 {
		t.Fatalf("key length = %d, want 32", len(k2))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestDeriveVaultKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	seed := "linux-laptop-081bel052-campus-login"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveVaultKey(seed, salt)
	k2 := svc.DeriveVaultKey(seed, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same seed+salt")
	}
}

func TestDeriveVaultKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	seed := "same machine seed"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1 := svc.DeriveVaultKey(seed, salt1)
	k2 := svc.DeriveVaultKey(seed, salt2)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveVaultKey_DifferentSeedProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	salt := bytes.Repeat([]byte{0x0F}, 16)

	k1 := svc.DeriveVaultKey("machine one", salt)
	k2 := svc.DeriveVaultKey("machine two", salt)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different seeds")
	}
}
