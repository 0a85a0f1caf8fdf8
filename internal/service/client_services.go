package service

import (
	"github.com/MKhiriev/go-campus-login/internal/adapter"
	"github.com/MKhiriev/go-campus-login/internal/config"
	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/internal/validators"
)

type ClientServices struct {
	VaultService   VaultService
	LoginService   LoginService
	JournalService JournalService
	PruneJob       JournalPruneJob
}

func NewClientServices(storages *store.ClientStorages, authenticator adapter.PortalAuthenticator, journalCfg config.ClientJournal, logger *logger.Logger) *ClientServices {
	vaultSvc := NewVaultService(crypto.NewCredentialCipher(), storages.CredentialBlobs, storages.VaultKeys, logger)
	loginSvc := NewLoginService(authenticator, vaultSvc, storages.AttemptJournal, validators.NewCredentialValidator(), logger)
	journalSvc := NewJournalService(storages.AttemptJournal, logger)

	return &ClientServices{
		VaultService:   vaultSvc,
		LoginService:   loginSvc,
		JournalService: journalSvc,
		PruneJob:       NewJournalPruneJob(storages.AttemptJournal, journalCfg, logger),
	}
}
