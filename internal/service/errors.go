package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNoSavedCredential = errors.New("no saved credential")
	ErrEncryptCredential = errors.New("credential encryption failed")
	ErrDecryptCredential = errors.New("credential decryption failed")
	ErrStoreCredential   = errors.New("saving credential blob failed")
	ErrClearCredential   = errors.New("clearing saved credential failed")
	ErrVaultKey          = errors.New("vault key unavailable")

	ErrJournalRead = errors.New("reading attempt journal failed")
)
