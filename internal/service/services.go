package service

import (
	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
)

// Services bundles the server-side service layer.
type Services struct {
	Auth      AuthService
	Study     StudyService
	Community CommunityService
}

// NewServices wires the server service layer over the given storages.
func NewServices(storages *store.Storages, cfg config.ServerApp, log *logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(storages.Documents, cfg, log),
		Study:     NewStudyService(storages.Documents, log),
		Community: NewCommunityService(storages.Documents, log),
	}
}
