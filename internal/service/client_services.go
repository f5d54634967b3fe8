package service

import (
	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	LibraryService ClientLibraryService
	StudyService   ClientStudyService
	AppInfoService ClientAppInfoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	library := NewClientLibraryService(serverAdapter)

	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.Sessions, serverAdapter),
		LibraryService: library,
		StudyService:   NewClientStudyService(library),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
