// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/study"
)

var ErrUserQuit = errors.New("вышел из программы")

var knownErrors = []struct {
	err error
	msg string
}{
	{study.ErrEmptyDeck, "В колоде нет карточек"},
	{store.ErrEmailAlreadyExists, "Пользователь с таким email уже существует"},
	{service.ErrWrongPassword, "Неверный email или пароль"},
	{store.ErrUserNotFound, "Неверный email или пароль"},
	{service.ErrNotLoggedIn, "Сессия истекла, войдите снова"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, войдите снова"},
	{store.ErrFolderNotFound, "Папка не найдена"},
	{store.ErrDeckNotFound, "Колода не найдена"},
	{store.ErrCardNotFound, "Карточка не найдена"},
	{service.ErrFolderIDRequired, "Колода должна принадлежать папке"},
	{service.ErrImageTooLarge, "Изображение слишком большое"},
	{adapter.ErrInternalServerError, "Внутренняя ошибка сервера"},
}

// errorMessage turns client errors into text for the status line.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			return known.msg
		}
	}

	if errors.Is(err, adapter.ErrBadRequest) {
		return "Некорректные данные: " + detail(err)
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// detail drops the sentinel prefix from "bad request: validation failed: ...".
func detail(err error) string {
	s := err.Error()
	if i := strings.LastIndex(s, adapter.ErrBadRequest.Error()+": "); i >= 0 {
		return s[i+len(adapter.ErrBadRequest.Error())+2:]
	}
	return s
}
