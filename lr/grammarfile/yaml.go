package grammarfile

import (
	"io"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a grammar in YAML format. name is used if the document does
// not set a name.
func LoadYAML(name string, r io.Reader) (*lr.Grammar, error) {
	return loadYAML(name, name, r)
}

func loadYAML(name, file string, r io.Reader) (*lr.Grammar, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, formatError(file, err, "cannot decode YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, formatError(file, nil, "expected a mapping at top level")
	}
	rl := &ruleList{name: name}
	var rules *yaml.Node
	top := doc.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "name":
			rl.name = val.Value
		case "start":
			rl.start = val.Value
		case "rules":
			rules = val
		default:
			tracer().Infof("%s: ignoring key %q at line %d", file, key.Value, key.Line)
		}
	}
	if rules == nil || rules.Kind != yaml.MappingNode {
		return nil, formatError(file, nil, "missing mapping 'rules'")
	}
	// mapping nodes keep their pairs in document order
	for i := 0; i+1 < len(rules.Content); i += 2 {
		lhs, alts := rules.Content[i], rules.Content[i+1]
		if alts.Kind != yaml.SequenceNode {
			return nil, formatError(file, nil, "line %d: productions of %s must be a list",
				alts.Line, lhs.Value)
		}
		for _, alt := range alts.Content {
			rhs, err := yamlAlternative(alt)
			if err != nil {
				return nil, formatError(file, err, "line %d: invalid production for %s",
					alt.Line, lhs.Value)
			}
			rl.add(lhs.Value, rhs)
		}
	}
	return rl.grammar(file)
}

func yamlAlternative(alt *yaml.Node) ([]string, error) {
	switch alt.Kind {
	case yaml.ScalarNode:
		return strings.Fields(alt.Value), nil
	case yaml.SequenceNode:
		var rhs []string
		if err := alt.Decode(&rhs); err != nil {
			return nil, err
		}
		return rhs, nil
	}
	return nil, &yaml.TypeError{Errors: []string{"expected a list of symbols or a string"}}
}
