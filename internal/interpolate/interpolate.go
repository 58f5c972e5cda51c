// Package interpolate renders text containing {{ expr }} segments. Each
// expression is a CEL expression evaluated against a set of variables.
package interpolate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/aretw0/easytest/pkg/scope"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

var (
	base *cel.Env

	identifier = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

	reserved = []string{
		"true", "false", "null", "in", "as", "break", "const", "continue", "else",
		"for", "function", "if", "import", "let", "loop", "package", "namespace",
		"return", "var", "void", "while",
	}
)

func init() {
	var err error
	base, err = cel.NewEnv()
	if err != nil {
		panic(fmt.Sprintf("failed to create base CEL environment: %v", err))
	}
}

type part struct {
	text string
	expr bool
}

// Template is parsed text. The zero value renders as the empty string.
type Template struct {
	parts []part
}

// Parse splits text into literal and expression segments and syntax checks
// every expression. An unterminated "{{" is kept as literal text.
func Parse(text string) (*Template, error) {
	t := &Template{}
	for len(text) > 0 {
		start := strings.Index(text, openDelim)
		if start < 0 {
			break
		}
		end := strings.Index(text[start+len(openDelim):], closeDelim)
		if end < 0 {
			break
		}
		end += start + len(openDelim)

		if start > 0 {
			t.parts = append(t.parts, part{text: text[:start]})
		}
		expr := strings.TrimSpace(text[start+len(openDelim) : end])
		if _, iss := base.Parse(expr); iss != nil && iss.Err() != nil {
			return nil, fmt.Errorf("parse %q: %w", expr, iss.Err())
		}
		t.parts = append(t.parts, part{text: expr, expr: true})
		text = text[end+len(closeDelim):]
	}
	if len(text) > 0 {
		t.parts = append(t.parts, part{text: text})
	}
	return t, nil
}

// HasExpressions reports whether the template contains any expression.
func (t *Template) HasExpressions() bool {
	return slices.ContainsFunc(t.parts, func(p part) bool { return p.expr })
}

// Expressions returns the expression sources in order.
func (t *Template) Expressions() []string {
	var out []string
	for _, p := range t.parts {
		if p.expr {
			out = append(out, p.text)
		}
	}
	return out
}

// Render evaluates every expression against vars. Expressions that fail to
// compile or evaluate, or that yield null, render as the empty string.
func (t *Template) Render(vars map[string]any) string {
	if !t.HasExpressions() {
		var b strings.Builder
		for _, p := range t.parts {
			b.WriteString(p.text)
		}
		return b.String()
	}

	env, activation := newEnv(vars)

	var b strings.Builder
	for _, p := range t.parts {
		if !p.expr {
			b.WriteString(p.text)
			continue
		}
		b.WriteString(eval(env, p.text, activation))
	}
	return b.String()
}

func newEnv(vars map[string]any) (*cel.Env, map[string]any) {
	activation := make(map[string]any, len(vars))
	var opts []cel.EnvOption
	for name, v := range vars {
		if !identifier.MatchString(name) || slices.Contains(reserved, name) {
			continue
		}
		nv, ok := normalize(v)
		if !ok {
			continue
		}
		activation[name] = nv
		opts = append(opts, cel.Variable(name, cel.DynType))
	}

	env, err := base.Extend(opts...)
	if err != nil {
		return base, nil
	}
	return env, activation
}

func eval(env *cel.Env, expr string, activation map[string]any) string {
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return ""
	}
	prg, err := env.Program(ast)
	if err != nil {
		return ""
	}
	val, _, err := prg.Eval(activation)
	if err != nil || types.IsError(val) || val == types.NullValue {
		return ""
	}
	return format(val.Value())
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
	}
	return fmt.Sprint(v)
}

// normalize turns scope values into plain maps and drops functions, which
// have no CEL representation.
func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case *scope.Scope:
		return normalizeMap(x.Flatten()), true
	case *scope.Object:
		return normalizeMap(x.ToMap()), true
	case map[string]any:
		return normalizeMap(x), true
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if ne, ok := normalize(e); ok {
				out = append(out, ne)
			}
		}
		return out, true
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return nil, false
	}
	return v, true
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nv, ok := normalize(v); ok {
			out[k] = nv
		}
	}
	return out
}
