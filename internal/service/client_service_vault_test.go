package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/mock"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestVaultSvc builds a vaultService with the real AES-GCM cipher and
// mocked blob/key storage, so tests exercise genuine seal/open round trips.
func newTestVaultSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*vaultService,
	*mock.MockBlobStorage,
	*mock.MockVaultKeyProvider,
) {
	t.Helper()
	mockBlobs := mock.NewMockBlobStorage(ctrl)
	mockKeys := mock.NewMockVaultKeyProvider(ctrl)

	svc := NewVaultService(crypto.NewCredentialCipher(), mockBlobs, mockKeys, logger.Nop()).(*vaultService)

	return svc, mockBlobs, mockKeys
}

func testVaultKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef") // 32 bytes
}

// ── RememberCredential ───────────────────────────────────────────────────────

func TestVaultService_RememberCredential_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	credential := models.Credential{Username: "081bel052", Password: "campus-secret"}
	key := testVaultKey()

	var savedBlob []byte
	gomock.InOrder(
		mockKeys.EXPECT().GetVaultKey(ctx).Return(key, nil),
		mockBlobs.EXPECT().SaveBlob(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, blob []byte) error {
				savedBlob = blob
				return nil
			},
		),
	)

	err := svc.RememberCredential(ctx, credential)
	require.NoError(t, err)

	// The stored blob must open back into the same credential with the same key.
	opened, err := crypto.NewCredentialCipher().DecryptCredential(savedBlob, key)
	require.NoError(t, err)
	assert.Equal(t, credential, opened)
}

func TestVaultService_RememberCredential_KeyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().GetVaultKey(ctx).Return(nil, errors.New("key file unreadable"))

	err := svc.RememberCredential(ctx, models.Credential{Username: "081bel052", Password: "campus-secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVaultKey)
}

func TestVaultService_RememberCredential_BadKeyLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	// 5 bytes is not a legal AES key length, so sealing must fail before
	// anything reaches the blob storage.
	mockKeys.EXPECT().GetVaultKey(ctx).Return([]byte("short"), nil)

	err := svc.RememberCredential(ctx, models.Credential{Username: "081bel052", Password: "campus-secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncryptCredential)
}

func TestVaultService_RememberCredential_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockKeys.EXPECT().GetVaultKey(ctx).Return(testVaultKey(), nil),
		mockBlobs.EXPECT().SaveBlob(ctx, gomock.Any()).Return(errors.New("disk full")),
	)

	err := svc.RememberCredential(ctx, models.Credential{Username: "081bel052", Password: "campus-secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreCredential)
}

// ── SavedCredential ──────────────────────────────────────────────────────────

func TestVaultService_SavedCredential_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	credential := models.Credential{Username: "081bel052", Password: "campus-secret"}
	key := testVaultKey()

	blob, err := crypto.NewCredentialCipher().EncryptCredential(credential, key)
	require.NoError(t, err)

	gomock.InOrder(
		mockBlobs.EXPECT().LoadBlob(ctx).Return(blob, nil),
		mockKeys.EXPECT().GetVaultKey(ctx).Return(key, nil),
	)

	got, err := svc.SavedCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, credential, got)
}

func TestVaultService_SavedCredential_EmptyVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().LoadBlob(ctx).Return(nil, store.ErrBlobNotFound)

	_, err := svc.SavedCredential(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSavedCredential)
	assert.NotErrorIs(t, err, ErrDecryptCredential, "absence must not look like a decryption failure")
}

func TestVaultService_SavedCredential_CorruptBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	key := testVaultKey()

	blob, err := crypto.NewCredentialCipher().EncryptCredential(models.Credential{Username: "081bel052", Password: "campus-secret"}, key)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF // flip one ciphertext byte

	gomock.InOrder(
		mockBlobs.EXPECT().LoadBlob(ctx).Return(blob, nil),
		mockKeys.EXPECT().GetVaultKey(ctx).Return(key, nil),
	)

	_, err = svc.SavedCredential(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptCredential)
	assert.NotErrorIs(t, err, ErrNoSavedCredential)
}

func TestVaultService_SavedCredential_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	blob, err := crypto.NewCredentialCipher().EncryptCredential(models.Credential{Username: "081bel052", Password: "campus-secret"}, testVaultKey())
	require.NoError(t, err)

	otherKey := []byte("fedcba9876543210fedcba9876543210")

	gomock.InOrder(
		mockBlobs.EXPECT().LoadBlob(ctx).Return(blob, nil),
		mockKeys.EXPECT().GetVaultKey(ctx).Return(otherKey, nil),
	)

	_, err = svc.SavedCredential(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptCredential)
}

func TestVaultService_SavedCredential_KeyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, mockKeys := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockBlobs.EXPECT().LoadBlob(ctx).Return([]byte("some blob"), nil),
		mockKeys.EXPECT().GetVaultKey(ctx).Return(nil, errors.New("key file unreadable")),
	)

	_, err := svc.SavedCredential(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVaultKey)
}

// ── ClearCredential ──────────────────────────────────────────────────────────

func TestVaultService_ClearCredential_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().DeleteBlob(ctx).Return(nil)

	require.NoError(t, svc.ClearCredential(ctx))
}

func TestVaultService_ClearCredential_DeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBlobs, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().DeleteBlob(ctx).Return(errors.New("permission denied"))

	err := svc.ClearCredential(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClearCredential)
}
