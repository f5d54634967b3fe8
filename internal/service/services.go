package service

import (
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
)

// Services aggregates every server-side service handed to the HTTP layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	FolderService  FolderService
	DeckService    DeckService
	CardService    CardService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	strict := cfg.App.StrictOwnership

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		FolderService:  NewFolderService(storages.FolderRepository, logger),
		DeckService:    NewDeckService(storages.DeckRepository, storages.FolderRepository, strict, logger),
		CardService:    NewCardService(storages.CardRepository, storages.DeckRepository, strict, logger),
		ImageService:   NewImageService(*storages, cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
