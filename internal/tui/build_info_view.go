// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-flashcards/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Название приложения: Go Flashcards\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())
	if serverVersion != "" {
		b.WriteString("\nВерсия сервера: ")
		b.WriteString(serverVersion)
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
