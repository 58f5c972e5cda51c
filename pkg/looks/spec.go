package looks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"gopkg.in/yaml.v3"
)

// Spec maps type tags to the properties expected to carry them.
// Tags keep the order in which they were first added; adding a tag again
// replaces its list but keeps its position.
// The zero value is an empty spec ready to use.
type Spec struct {
	groups *linkedhashmap.Map[TypeTag, Properties]
}

// NewSpec returns an empty spec.
func NewSpec() *Spec {
	return &Spec{groups: linkedhashmap.New[TypeTag, Properties]()}
}

// Expect adds a space-delimited property list for tag.
func (s *Spec) Expect(tag TypeTag, list string) *Spec {
	s.put(tag, Split(list))
	return s
}

// ExpectNames adds an explicit property list for tag.
func (s *Spec) ExpectNames(tag TypeTag, names ...string) *Spec {
	s.put(tag, append(Properties(nil), names...))
	return s
}

// Set adds a property list in either form (see ParseProperties).
func (s *Spec) Set(tag TypeTag, list any) error {
	props, err := ParseProperties(list)
	if err != nil {
		return fmt.Errorf("tag %s: %w", tag, err)
	}
	s.put(tag, props)
	return nil
}

func (s *Spec) put(tag TypeTag, props Properties) {
	if s.groups == nil {
		s.groups = linkedhashmap.New[TypeTag, Properties]()
	}
	s.groups.Put(tag, props)
}

// Tags returns the tags in iteration order.
func (s *Spec) Tags() []TypeTag {
	if s == nil || s.groups == nil {
		return nil
	}
	return s.groups.Keys()
}

// Properties returns the list for tag.
func (s *Spec) Properties(tag TypeTag) (Properties, bool) {
	if s == nil || s.groups == nil {
		return nil, false
	}
	return s.groups.Get(tag)
}

// Len returns the number of tags.
func (s *Spec) Len() int {
	if s == nil || s.groups == nil {
		return 0
	}
	return s.groups.Size()
}

func (s *Spec) String() string {
	var b strings.Builder
	for i, tag := range s.Tags() {
		if i > 0 {
			b.WriteString("; ")
		}
		props, _ := s.Properties(tag)
		fmt.Fprintf(&b, "%s: %s", tag, props)
	}
	return b.String()
}

// FromMap builds a spec from a plain map. Go maps carry no order, so tags are
// added in sorted order.
func FromMap(m map[string]any) (*Spec, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	spec := NewSpec()
	for _, k := range keys {
		if err := spec.Set(TypeTag(k), m[k]); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

// ParseSpec reads a YAML or JSON mapping of tags to property lists.
// Key order is taken from the document.
func ParseSpec(data []byte) (*Spec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse spec: %w", err)
	}

	spec := NewSpec()
	if root.Kind == 0 {
		return spec, nil
	}
	if err := spec.UnmarshalYAML(&root); err != nil {
		return nil, err
	}
	return spec, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode {
		if len(value.Content) == 0 {
			return nil
		}
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("spec: line %d: expected a mapping of type tags", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		var list any
		if err := val.Decode(&list); err != nil {
			return fmt.Errorf("spec: line %d: %w", val.Line, err)
		}
		if err := s.Set(TypeTag(key.Value), list); err != nil {
			return fmt.Errorf("spec: line %d: %w", val.Line, err)
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping tag order.
func (s *Spec) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, tag := range s.Tags() {
		props, _ := s.Properties(tag)
		var val yaml.Node
		if err := val.Encode([]string(props)); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(tag)},
			&val,
		)
	}
	return node, nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (s *Spec) UnmarshalJSON(data []byte) error {
	parsed, err := ParseSpec(data)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// MarshalJSON encodes the spec as a JSON object of name arrays, keeping tag order.
func (s *Spec) MarshalJSON() ([]byte, error) {
	if s == nil || s.groups == nil {
		return []byte("{}"), nil
	}
	return s.groups.ToJSON()
}
