/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// resolver supplies the replacement for one placeholder name.
type resolver func(name string) (string, error)

// expand scans template for {{name}} placeholders and substitutes each via
// resolve. Both New and Build route through it so they always agree on what
// counts as a placeholder.
func expand(template string, resolve resolver) (string, error) {
	var out strings.Builder

	for len(template) > 0 {
		open := strings.Index(template, "{{")
		if open == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:open])

		end := strings.Index(template[open:], "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}
		end += open + 2

		name := strings.TrimSpace(template[open+2 : end-2])
		if !validIdentifier(name) {
			return "", fmt.Errorf("invalid placeholder identifier %q", name)
		}

		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)

		template = template[end:]
	}

	return out.String(), nil
}

// validIdentifier accepts names that start with a letter and continue with
// letters, digits, or underscores.
func validIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
