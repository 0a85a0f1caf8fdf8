package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultKeyFile_CreatesKeyOnFirstUse(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.key")
	p := NewVaultKeyFile(path, crypto.NewKeyChainService(), logger.Nop())

	key, err := p.GetVaultKey(ctx)
	require.NoError(t, err)
	require.Len(t, key, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestVaultKeyFile_ReturnsSameKeyOnLaterCalls(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.key")
	p := NewVaultKeyFile(path, crypto.NewKeyChainService(), logger.Nop())

	first, err := p.GetVaultKey(ctx)
	require.NoError(t, err)

	second, err := p.GetVaultKey(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVaultKeyFile_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state", "storage.key")
	p := NewVaultKeyFile(path, crypto.NewKeyChainService(), logger.Nop())

	_, err := p.GetVaultKey(ctx)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestVaultKeyFile_DifferentFilesGetDifferentKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	keychain := crypto.NewKeyChainService()

	p1 := NewVaultKeyFile(filepath.Join(dir, "one.key"), keychain, logger.Nop())
	p2 := NewVaultKeyFile(filepath.Join(dir, "two.key"), keychain, logger.Nop())

	k1, err := p1.GetVaultKey(ctx)
	require.NoError(t, err)
	k2, err := p2.GetVaultKey(ctx)
	require.NoError(t, err)

	// random salts make independently created keys differ
	assert.NotEqual(t, k1, k2)
}

func TestVaultKeyFile_CorruptedKeyFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.key")
	require.NoError(t, os.WriteFile(path, []byte("way too short"), 0o600))

	p := NewVaultKeyFile(path, crypto.NewKeyChainService(), logger.Nop())

	_, err := p.GetVaultKey(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVaultKeyCorrupted)

	// the corrupted file must be left in place, never regenerated over
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("way too short"), data)
}
