package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	return version, mapAdapterError(err)
}
