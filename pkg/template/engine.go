// Package template implements placeholder substitution over a project
// tree: a Liquid engine extended with case-conversion filters, the
// variable set built per run, and the walk that rewrites file contents
// and file names in place.
package template

import (
	"github.com/osteele/liquid"

	"github.com/arthur-debert/mason/pkg/casing"
	"github.com/arthur-debert/mason/pkg/errors"
)

// Engine compiles and renders Liquid text. It holds no per-render state:
// one engine value can serve every file of a walk, and construction is
// cheap enough to create one per walk.
type Engine struct {
	liquid *liquid.Engine
}

// NewEngine returns an engine with the kebab_case, pascal_case and
// snake_case filters registered on top of Liquid's standard set (which
// includes date and capitalize). The returned engine is immutable.
func NewEngine() *Engine {
	e := liquid.NewEngine()
	for _, c := range casing.All() {
		e.RegisterFilter(c.FilterName(), c.Apply)
	}
	return &Engine{liquid: e}
}

// Document is a parsed template, ready to render any number of times
type Document struct {
	template *liquid.Template
}

// Compile parses text into a Document. It fails on malformed placeholder
// or tag syntax and never touches the filesystem.
func (e *Engine) Compile(text string) (*Document, error) {
	tpl, err := e.liquid.ParseString(text)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateSyntax, "malformed template syntax")
	}
	return &Document{template: tpl}, nil
}

// Render evaluates the document against vars. It fails when an expression
// references an unregistered filter or a built-in filter rejects its
// input; the three case filters never fail.
func (d *Document) Render(vars Variables) (string, error) {
	out, err := d.template.RenderString(vars.bindings())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateRender, "replacing placeholders")
	}
	return out, nil
}

// RenderString is a convenience single-shot compile and render
func (e *Engine) RenderString(text string, vars Variables) (string, error) {
	doc, err := e.Compile(text)
	if err != nil {
		return "", err
	}
	return doc.Render(vars)
}
