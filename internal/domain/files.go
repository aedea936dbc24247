package domain

import (
	"path/filepath"
	"strings"
)

// File describes an uploaded file for the lifetime of one request.
type File struct {
	OriginalName string
	Name         string
	Path         string
}

// Extension returns the lowercased extension without the leading dot.
func (f *File) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
}

// DisplayName prefers the name the client sent.
func (f *File) DisplayName() string {
	if f.OriginalName != "" {
		return f.OriginalName
	}
	return f.Name
}
