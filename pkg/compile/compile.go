// Package compile turns parsed markup into a link function. Linking binds
// directives, controllers and {{ }} interpolations to a scope; rendering
// happens when the scope is digested.
package compile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/easytest/internal/interpolate"
	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/injector"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
	"golang.org/x/net/html"
)

// Linker provides directives and controllers. *injector.Injector
// implements it.
type Linker interface {
	Directive(name string) (registry.Directive, bool)
	Prepare(name string, locals map[string]any) (*injector.Pending, error)
}

// LinkFunc binds compiled markup to a scope.
type LinkFunc func(s *scope.Scope) error

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for link records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// Compiler compiles elements against the directives of a Linker.
type Compiler struct {
	linker Linker
	logger *slog.Logger
}

// New creates a Compiler.
func New(linker Linker, opts ...Option) *Compiler {
	c := &Compiler{
		linker: linker,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile applies directive templates to el and its descendants and returns
// the function that links the result to a scope. The scope passed to the
// returned function is recorded on el.
func (c *Compiler) Compile(el *dom.Element) (LinkFunc, error) {
	link, err := c.compileElement(el)
	if err != nil {
		return nil, err
	}
	return func(s *scope.Scope) error {
		el.SetScope(s)
		return link(s)
	}, nil
}

type boundDirective struct {
	name string
	def  registry.Directive
}

func (c *Compiler) directivesFor(el *dom.Element) []boundDirective {
	var out []boundDirective
	if d, ok := c.linker.Directive(registry.Normalize(el.Tag())); ok && d.Matches('E') {
		out = append(out, boundDirective{name: registry.Normalize(el.Tag()), def: d})
	}
	for _, a := range el.Node().Attr {
		name := registry.Normalize(a.Key)
		if d, ok := c.linker.Directive(name); ok && d.Matches('A') {
			out = append(out, boundDirective{name: name, def: d})
		}
	}
	return out
}

func (c *Compiler) compileElement(el *dom.Element) (LinkFunc, error) {
	directives := c.directivesFor(el)

	for _, d := range directives {
		if d.def.Template == "" {
			continue
		}
		nodes, err := dom.ParseFragment(d.def.Template)
		if err != nil {
			return nil, fmt.Errorf("directive %s: template: %w", d.name, err)
		}
		el.ReplaceChildren(nodes)
	}

	attrLinks, err := c.compileAttrs(el)
	if err != nil {
		return nil, err
	}

	var childLinks []LinkFunc
	for n := el.Node().FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.ElementNode:
			link, err := c.compileElement(el.Handle(n))
			if err != nil {
				return nil, err
			}
			childLinks = append(childLinks, link)
		case html.TextNode:
			link, err := compileText(n)
			if err != nil {
				return nil, err
			}
			if link != nil {
				childLinks = append(childLinks, link)
			}
		}
	}

	return func(s *scope.Scope) error {
		for _, link := range attrLinks {
			if err := link(s); err != nil {
				return err
			}
		}

		inner := s
		for _, d := range directives {
			if d.def.Controller == "" {
				continue
			}
			if inner == s {
				inner = s.New()
			}
			if err := c.linkController(el, d, s, inner); err != nil {
				return err
			}
		}
		if inner != s {
			for _, child := range el.Children() {
				child.SetScope(inner)
			}
		}

		for _, link := range childLinks {
			if err := link(inner); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func (c *Compiler) linkController(el *dom.Element, d boundDirective, outer, inner *scope.Scope) error {
	pending, err := c.linker.Prepare(d.def.Controller, map[string]any{injector.ScopeLocal: inner})
	if err != nil {
		return fmt.Errorf("directive %s: %w", d.name, err)
	}

	if d.def.BindToController {
		if err := bind(el, d, outer, pending.Instance); err != nil {
			return err
		}
	}

	ctrl, err := pending.Instantiate()
	if err != nil {
		return fmt.Errorf("directive %s: %w", d.name, err)
	}
	if d.def.ControllerAs != "" {
		inner.Set(d.def.ControllerAs, ctrl)
	}

	c.logger.Debug("directive linked", "directive", d.name, "controller", d.def.Controller, "scope", inner.ID())
	return nil
}

// bind copies attribute bindings onto the controller instance and keeps
// them current through watchers on the outer scope.
func bind(el *dom.Element, d boundDirective, outer *scope.Scope, instance *scope.Object) error {
	for local, spec := range d.def.Bindings {
		if spec == "" {
			return fmt.Errorf("directive %s: empty binding for %s", d.name, local)
		}
		mode, attrName := spec[0], strings.TrimSpace(spec[1:])
		if attrName == "" {
			attrName = local
		}
		raw, ok := findAttr(el, attrName)
		if !ok {
			continue
		}

		var get scope.WatchFunc
		switch mode {
		case '@':
			tmpl, err := interpolate.Parse(raw)
			if err != nil {
				return fmt.Errorf("directive %s: binding %s: %w", d.name, local, err)
			}
			get = func(s *scope.Scope) any { return tmpl.Render(s.Flatten()) }
		case '=', '<':
			expr := strings.TrimSpace(raw)
			get = func(s *scope.Scope) any {
				v, _ := s.Lookup(expr)
				return v
			}
		default:
			return fmt.Errorf("directive %s: unsupported binding %q for %s", d.name, spec, local)
		}

		instance.Set(local, get(outer))
		outer.Watch(get, func(newV, _ any, _ *scope.Scope) {
			instance.Set(local, newV)
		})
	}
	return nil
}

func findAttr(el *dom.Element, name string) (string, bool) {
	for _, a := range el.Node().Attr {
		if registry.Normalize(a.Key) == name {
			return a.Val, true
		}
	}
	return "", false
}

func (c *Compiler) compileAttrs(el *dom.Element) ([]LinkFunc, error) {
	var links []LinkFunc
	for _, a := range el.Node().Attr {
		if !strings.Contains(a.Val, "{{") {
			continue
		}
		tmpl, err := interpolate.Parse(a.Val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Key, err)
		}
		if !tmpl.HasExpressions() {
			continue
		}
		key := a.Key
		links = append(links, func(s *scope.Scope) error {
			s.Watch(func(s *scope.Scope) any { return tmpl.Render(s.Flatten()) },
				func(newV, _ any, _ *scope.Scope) { el.SetAttr(key, newV.(string)) })
			return nil
		})
	}
	return links, nil
}

func compileText(n *html.Node) (LinkFunc, error) {
	if !strings.Contains(n.Data, "{{") {
		return nil, nil
	}
	tmpl, err := interpolate.Parse(n.Data)
	if err != nil {
		return nil, fmt.Errorf("text %q: %w", n.Data, err)
	}
	if !tmpl.HasExpressions() {
		return nil, nil
	}
	return func(s *scope.Scope) error {
		s.Watch(func(s *scope.Scope) any { return tmpl.Render(s.Flatten()) },
			func(newV, _ any, _ *scope.Scope) { n.Data = newV.(string) })
		return nil
	}, nil
}
