/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder assembles model prompts from templates carrying
// {{name}} placeholders. Prompts are immutable: every Bind call returns a new
// Prompt with that placeholder filled, and Build fails while any placeholder
// remains unbound, so a half-assembled prompt can never reach a model.
package promptbuilder

import (
	"fmt"
	"maps"
)

// literal only accepts untyped string constants. Template text and
// developer-authored values go through it so runtime data cannot pose as
// template structure.
type literal string

// Prompt is a template with bind-once placeholders.
type Prompt struct {
	template string
	bindings map[string]binding
}

// New parses a template literal and registers a placeholder for every
// {{name}} it contains.
func New(template literal) (*Prompt, error) {
	bindings := make(map[string]binding)

	tmpl, err := expand(string(template), func(name string) (string, error) {
		if _, ok := bindings[name]; !ok {
			bindings[name] = &unbound{name: name}
		}
		// Parsing leaves the placeholder in place.
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}

	return &Prompt{template: tmpl, bindings: bindings}, nil
}

// Must panics when the paired call failed. Intended for package-level prompt
// variables whose templates are fixed at compile time.
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// Placeholders returns the set of placeholder names found in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindLiteral fills a placeholder with a developer-authored string constant.
func (p *Prompt) BindLiteral(name string, value literal) (*Prompt, error) {
	return p.bind(name, &boundValue{val: string(value)})
}

// Bind fills a placeholder with a runtime string, such as file content or a
// detected language label.
func (p *Prompt) Bind(name, value string) (*Prompt, error) {
	return p.bind(name, &boundValue{val: value})
}

// BindJSON fills a placeholder with the indented JSON encoding of data.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, &jsonValue{data: data})
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	if err := bindable(p.bindings, name); err != nil {
		return nil, err
	}
	bound := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	bound.bindings[name] = b
	return bound, nil
}

// Build renders the final prompt, failing if any placeholder is unbound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		val, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = val
	}

	return expand(p.template, func(name string) (string, error) {
		if val, ok := values[name]; ok {
			return val, nil
		}
		// New and Build tokenize identically, so this is unreachable.
		return "", fmt.Errorf("internal error: placeholder %q has no value", name)
	})
}
