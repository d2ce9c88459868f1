package ingest

import (
	"path/filepath"
	"strings"

	"daily-journal/internal/model"
)

// KindFromExtension maps a file extension (with or without dot) to an item kind.
func KindFromExtension(ext string) model.ItemKind {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg", "png", "gif", "heic", "webp":
		return model.ItemKindImage
	case "pdf":
		return model.ItemKindPDF
	case "doc", "docx":
		return model.ItemKindDocument
	default:
		return model.ItemKindUnknown
	}
}

// TitleFromFileName returns the file name without directory and extension.
func TitleFromFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return untitled
	}
	return stem
}

func isHEIC(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".heic")
}
