package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/easytest/pkg/looks"
	"gopkg.in/yaml.v3"
)

// LoadSpec reads a YAML or JSON spec file.
func LoadSpec(path string) (*looks.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	spec, err := looks.ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("parse spec %s: %w", path, err)
	}
	return spec, nil
}

// Property is a top-level property of a document.
type Property struct {
	Name  string
	Value any
}

// Document is a decoded YAML or JSON file.
type Document struct {
	Path string
	// Value is the whole document as maps, slices and scalars.
	Value any
	// Properties lists top-level keys in document order when the document
	// is a mapping.
	Properties []Property
}

// LoadDocument reads a YAML or JSON document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	doc := &Document{Path: path}
	if len(root.Content) == 0 {
		return doc, nil
	}
	node := root.Content[0]
	if err := node.Decode(&doc.Value); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", path, err)
	}
	doc.Value = nullsToObjects(doc.Value)

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			var v any
			if err := node.Content[i+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("decode %s in %s: %w", node.Content[i].Value, path, err)
			}
			doc.Properties = append(doc.Properties, Property{Name: node.Content[i].Value, Value: nullValue(v)})
		}
	}
	return doc, nil
}

// null is what a YAML or JSON null decodes to inside a document. It is a
// typed nil map so that looks.TypeOf reports it as object, not undefined.
var null = map[string]any(nil)

func nullValue(v any) any {
	if v == nil {
		return null
	}
	return nullsToObjects(v)
}

// nullsToObjects replaces nested nil values. A nil document stays nil.
func nullsToObjects(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = nullValue(e)
		}
	case []any:
		for i, e := range v {
			v[i] = nullValue(e)
		}
	}
	return v
}
