package schema

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/inputkit/inputkit"
)

// ruleSpec is the YAML form of one rule. Custom predicates and transforms
// cannot be expressed declaratively; attach them in code after loading when
// needed.
type ruleSpec struct {
	Kind     string   `yaml:"kind"`
	Required bool     `yaml:"required"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	Pattern  string   `yaml:"pattern"`
	Enum     []any    `yaml:"enum"`
	Message  string   `yaml:"message"`
}

// ruleSpecs accepts either a single rule mapping or a sequence of them, so
// schema files can write the common one-rule case without list syntax.
type ruleSpecs []ruleSpec

func (r *ruleSpecs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []ruleSpec
		if err := node.Decode(&list); err != nil {
			return err
		}
		*r = list
		return nil
	}

	var single ruleSpec
	if err := node.Decode(&single); err != nil {
		return err
	}
	*r = ruleSpecs{single}
	return nil
}

func (r ruleSpec) toRule() (inputkit.Rule, error) {
	kind, err := inputkit.ParseKind(r.Kind)
	if err != nil {
		return inputkit.Rule{}, err
	}

	rule := inputkit.Rule{
		Kind:     kind,
		Required: r.Required,
		Min:      r.Min,
		Max:      r.Max,
		Enum:     r.Enum,
		Message:  r.Message,
	}

	if r.Pattern != "" {
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return inputkit.Rule{}, fmt.Errorf("invalid pattern %q: %w", r.Pattern, err)
		}
		rule.Pattern = pattern
	}

	return rule, nil
}

// Load reads a YAML document of named schemas:
//
//	book:
//	  title:
//	    kind: string
//	    required: true
//	    max: 200
//	  isbn:
//	    - kind: isbn
//	      required: true
//
// and returns them keyed by name.
func Load(r io.Reader) (map[string]inputkit.Schema, error) {
	var doc map[string]map[string]ruleSpecs
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}

	schemas := make(map[string]inputkit.Schema, len(doc))
	for name, fields := range doc {
		s := make(inputkit.Schema, len(fields))
		for field, specs := range fields {
			rules := make([]inputkit.Rule, 0, len(specs))
			for _, spec := range specs {
				rule, err := spec.toRule()
				if err != nil {
					return nil, fmt.Errorf("schema %q, field %q: %w", name, field, err)
				}
				rules = append(rules, rule)
			}
			s[field] = rules
		}
		schemas[name] = s
	}

	return schemas, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string) (map[string]inputkit.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()

	return Load(f)
}
