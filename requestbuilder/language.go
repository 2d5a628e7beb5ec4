/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package requestbuilder

import (
	"path/filepath"
	"strings"
)

// languages maps file extensions (without the leading dot) to the language
// label used in review prompts. Notebooks are treated as Python.
var languages = map[string]string{
	"py":    "Python",
	"cs":    "C#",
	"js":    "JavaScript",
	"java":  "Java",
	"cpp":   "C++",
	"c":     "C",
	"rb":    "Ruby",
	"go":    "Go",
	"php":   "PHP",
	"ts":    "TypeScript",
	"swift": "Swift",
	"kt":    "Kotlin",
	"rs":    "Rust",
	"html":  "HTML",
	"css":   "CSS",
	"sh":    "Shell Script",
	"dart":  "Dart",
	"ipynb": "Python",
}

// DetectLanguage returns the language label for a file path based on its
// extension, or "Unknown" when the extension is not recognized.
func DetectLanguage(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if lang, ok := languages[ext]; ok {
		return lang
	}
	return "Unknown"
}
