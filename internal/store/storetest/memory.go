// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storetest provides an in-memory implementation of the store
// repositories for service and handler tests. It follows the same ownership
// and not-found rules as the SQL repositories.
package storetest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/models"
)

// Memory holds users, folders, decks, cards and images in maps.
// It is safe for concurrent use.
type Memory struct {
	mu sync.Mutex

	nextID  int64
	users   map[int64]models.User
	folders map[int64]models.Folder
	decks   map[int64]models.Deck
	cards   map[int64]models.Card
	images  map[string]models.Image

	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[int64]models.User),
		folders: make(map[int64]models.Folder),
		decks:   make(map[int64]models.Deck),
		cards:   make(map[int64]models.Card),
		images:  make(map[string]models.Image),
		now:     time.Now,
	}
}

// Storages exposes m through every repository field. DB stays nil.
func (m *Memory) Storages() *store.Storages {
	return &store.Storages{
		UserRepository:   users{m},
		FolderRepository: folders{m},
		DeckRepository:   decks{m},
		CardRepository:   cards{m},
		ImageStorage:     images{m},
	}
}

// Folder returns a stored folder regardless of owner.
func (m *Memory) Folder(id int64) (models.Folder, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.folders[id]
	return f, ok
}

// Deck returns a stored deck regardless of scope.
func (m *Memory) Deck(id int64) (models.Deck, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.decks[id]
	return d, ok
}

// ImageCount reports how many images are stored.
func (m *Memory) ImageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.images)
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

// visible reports whether deck d can be reached within scope.
func (m *Memory) visible(d models.Deck, scope store.Scope) bool {
	if !scope.Restricted() {
		return true
	}
	if d.FolderID == nil {
		return false
	}
	f, ok := m.folders[*d.FolderID]
	return ok && f.UserID == scope.UserID
}

func (m *Memory) deleteDeckLocked(id int64) {
	delete(m.decks, id)
	for cid, c := range m.cards {
		if c.DeckID == id {
			delete(m.cards, cid)
		}
	}
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

type users struct{ m *Memory }

func (r users) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	user.ID = r.m.id()
	user.CreatedAt = r.m.now()
	r.m.users[user.ID] = user
	return user, nil
}

func (r users) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r users) FindUserByID(_ context.Context, id int64) (models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (r users) UpdateUser(_ context.Context, id int64, update models.UserUpdateRequest) (models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if update.Email.Set {
		for _, other := range r.m.users {
			if other.ID != id && strings.EqualFold(other.Email, update.Email.Value) {
				return models.User{}, store.ErrEmailAlreadyExists
			}
		}
		u.Email = update.Email.Value
	}
	if update.Username.Set {
		u.Username = update.Username.Value
	}
	r.m.users[id] = u
	return u, nil
}

// ─────────────────────────────────────────────
// folders
// ─────────────────────────────────────────────

type folders struct{ m *Memory }

func (r folders) ListFolders(_ context.Context, userID int64) ([]models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	list := make([]models.Folder, 0)
	for _, f := range r.m.folders {
		if f.UserID == userID {
			list = append(list, f)
		}
	}
	slices.SortFunc(list, func(a, b models.Folder) int { return cmp.Compare(b.ID, a.ID) })
	return list, nil
}

func (r folders) GetFolder(_ context.Context, id, userID int64) (models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	f, ok := r.m.folders[id]
	if !ok || f.UserID != userID {
		return models.Folder{}, store.ErrFolderNotFound
	}
	return f, nil
}

func (r folders) CreateFolder(_ context.Context, folder models.Folder) (models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.users[folder.UserID]; !ok {
		return models.Folder{}, store.ErrUserNotFound
	}
	folder.ID = r.m.id()
	folder.CreatedAt = r.m.now()
	folder.UpdatedAt = folder.CreatedAt
	r.m.folders[folder.ID] = folder
	return folder, nil
}

func (r folders) UpdateFolder(_ context.Context, id, userID int64, update models.FolderUpdateRequest) (models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	f, ok := r.m.folders[id]
	if !ok || f.UserID != userID {
		return models.Folder{}, store.ErrFolderNotFound
	}
	if update.Title.Set {
		f.Title = update.Title.Value
	}
	if update.Description.Set {
		f.Description = update.Description.Ptr()
	}
	f.UpdatedAt = r.m.now()
	r.m.folders[id] = f
	return f, nil
}

func (r folders) DeleteFolder(_ context.Context, id, userID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	f, ok := r.m.folders[id]
	if !ok || f.UserID != userID {
		return store.ErrFolderNotFound
	}
	delete(r.m.folders, id)
	for did, d := range r.m.decks {
		if d.FolderID != nil && *d.FolderID == id {
			r.m.deleteDeckLocked(did)
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// decks
// ─────────────────────────────────────────────

type decks struct{ m *Memory }

func sortDecks(list []models.Deck) {
	slices.SortFunc(list, func(a, b models.Deck) int { return cmp.Compare(b.ID, a.ID) })
}

func (r decks) ListDecks(_ context.Context, scope store.Scope) ([]models.Deck, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	list := make([]models.Deck, 0)
	for _, d := range r.m.decks {
		if r.m.visible(d, scope) {
			list = append(list, d)
		}
	}
	sortDecks(list)
	return list, nil
}

func (r decks) ListFolderDecks(_ context.Context, folderID int64) ([]models.Deck, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	list := make([]models.Deck, 0)
	for _, d := range r.m.decks {
		if d.FolderID != nil && *d.FolderID == folderID {
			list = append(list, d)
		}
	}
	sortDecks(list)
	return list, nil
}

func (r decks) GetDeck(_ context.Context, id int64, scope store.Scope) (models.Deck, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	d, ok := r.m.decks[id]
	if !ok || !r.m.visible(d, scope) {
		return models.Deck{}, store.ErrDeckNotFound
	}
	return d, nil
}

func (r decks) CreateDeck(_ context.Context, deck models.Deck) (models.Deck, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if deck.FolderID != nil {
		if _, ok := r.m.folders[*deck.FolderID]; !ok {
			return models.Deck{}, store.ErrFolderNotFound
		}
	}
	deck.ID = r.m.id()
	deck.CreatedAt = r.m.now()
	deck.UpdatedAt = deck.CreatedAt
	r.m.decks[deck.ID] = deck
	return deck, nil
}

func (r decks) UpdateDeck(_ context.Context, id int64, scope store.Scope, update models.DeckUpdateRequest) (models.Deck, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	d, ok := r.m.decks[id]
	if !ok || !r.m.visible(d, scope) {
		return models.Deck{}, store.ErrDeckNotFound
	}
	if update.Title.Set {
		d.Title = update.Title.Value
	}
	if update.Description.Set {
		d.Description = update.Description.Ptr()
	}
	d.UpdatedAt = r.m.now()
	r.m.decks[id] = d
	return d, nil
}

func (r decks) DeleteDeck(_ context.Context, id int64, scope store.Scope) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	d, ok := r.m.decks[id]
	if !ok || !r.m.visible(d, scope) {
		return store.ErrDeckNotFound
	}
	r.m.deleteDeckLocked(id)
	return nil
}

func (r decks) DeleteFolderDeck(_ context.Context, deckID, folderID, userID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	d, ok := r.m.decks[deckID]
	if !ok || d.FolderID == nil || *d.FolderID != folderID {
		return store.ErrDeckNotFound
	}
	if f, ok := r.m.folders[folderID]; !ok || f.UserID != userID {
		return store.ErrDeckNotFound
	}
	r.m.deleteDeckLocked(deckID)
	return nil
}

// ─────────────────────────────────────────────
// cards
// ─────────────────────────────────────────────

type cards struct{ m *Memory }

func (r cards) ListCards(_ context.Context, deckID int64) ([]models.Card, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	list := make([]models.Card, 0)
	for _, c := range r.m.cards {
		if c.DeckID == deckID {
			list = append(list, c)
		}
	}
	slices.SortFunc(list, func(a, b models.Card) int { return cmp.Compare(a.ID, b.ID) })
	return list, nil
}

func (r cards) CreateCard(_ context.Context, card models.Card) (models.Card, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.decks[card.DeckID]; !ok {
		return models.Card{}, store.ErrDeckNotFound
	}
	card.ID = r.m.id()
	card.CreatedAt = r.m.now()
	r.m.cards[card.ID] = card
	return card, nil
}

func (r cards) find(id, deckID int64, scope store.Scope) (models.Card, bool) {
	c, ok := r.m.cards[id]
	if !ok || c.DeckID != deckID {
		return models.Card{}, false
	}
	d, ok := r.m.decks[deckID]
	if !ok || !r.m.visible(d, scope) {
		return models.Card{}, false
	}
	return c, true
}

func (r cards) UpdateCard(_ context.Context, id, deckID int64, scope store.Scope, update models.CardUpdateRequest) (models.Card, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c, ok := r.find(id, deckID, scope)
	if !ok {
		return models.Card{}, store.ErrCardNotFound
	}
	if update.Term.Set {
		c.Term = update.Term.Value
	}
	if update.Definition.Set {
		c.Definition = update.Definition.Value
	}
	if update.ImageURL.Set {
		c.ImageURL = update.ImageURL.Ptr()
	}
	r.m.cards[id] = c
	return c, nil
}

func (r cards) DeleteCard(_ context.Context, id, deckID int64, scope store.Scope) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.find(id, deckID, scope); !ok {
		return store.ErrCardNotFound
	}
	delete(r.m.cards, id)
	return nil
}

// ─────────────────────────────────────────────
// images
// ─────────────────────────────────────────────

type images struct{ m *Memory }

func (r images) SaveImage(_ context.Context, image models.Image) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	image.Data = slices.Clone(image.Data)
	r.m.images[image.Key] = image
	return nil
}

func (r images) GetImage(_ context.Context, key string) (models.Image, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	img, ok := r.m.images[key]
	if !ok {
		return models.Image{}, store.ErrImageNotFound
	}
	return img, nil
}

func (r images) DeleteImage(_ context.Context, key string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.images[key]; !ok {
		return store.ErrImageNotFound
	}
	delete(r.m.images, key)
	return nil
}
