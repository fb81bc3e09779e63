package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxYAMLNodes bounds the number of nodes visited while expanding aliases.
const maxYAMLNodes = 1 << 20

// decodeYAML decodes the first YAML document. Scalars keep their source text,
// so "0041" stays "0041" instead of becoming the integer 41.
func decodeYAML(b []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("empty YAML document")
	}
	w := &yamlWalker{expanding: map[*yaml.Node]bool{}}
	return w.walk(&doc)
}

// yamlWalker converts a node tree while guarding alias expansion against
// cycles and exponential blow-up.
type yamlWalker struct {
	expanding map[*yaml.Node]bool
	visited   int
}

func (w *yamlWalker) walk(n *yaml.Node) (any, error) {
	w.visited++
	if w.visited > maxYAMLNodes {
		return nil, fmt.Errorf("line %d: document expands to more than %d nodes", n.Line, maxYAMLNodes)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("empty YAML document")
		}
		return w.walk(n.Content[0])
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if isNull(v) {
				continue
			}
			vv, err := w.walk(v)
			if err != nil {
				return nil, err
			}
			out[k.Value] = vv
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			if isNull(c) {
				continue
			}
			vv, err := w.walk(c)
			if err != nil {
				return nil, err
			}
			out = append(out, vv)
		}
		return out, nil
	case yaml.AliasNode:
		target := n.Alias
		if target == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", n.Line, n.Value)
		}
		if w.expanding[target] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		w.expanding[target] = true
		defer delete(w.expanding, target)
		return w.walk(target)
	case yaml.ScalarNode:
		if n.Tag == "!!bool" {
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			if b {
				return "1", nil
			}
			return "0", nil
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

// isNull reports whether n is a null scalar, directly or through an alias.
func isNull(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
