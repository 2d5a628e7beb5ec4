/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
)

// binding produces the substitution value for one placeholder.
type binding interface {
	value() (string, error)
}

// unbound is the initial state of every placeholder.
type unbound struct {
	name string
}

func (u *unbound) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

type boundValue struct {
	val string
}

func (b *boundValue) value() (string, error) {
	return b.val, nil
}

type jsonValue struct {
	data any
}

func (j *jsonValue) value() (string, error) {
	out, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON binding: %w", err)
	}
	return string(out), nil
}

// bindable reports an error unless name exists in the template and has not
// been bound yet.
func bindable(bindings map[string]binding, name string) error {
	b, ok := bindings[name]
	if !ok {
		return fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, isUnbound := b.(*unbound); !isUnbound {
		return fmt.Errorf("placeholder %q already bound", name)
	}
	return nil
}
