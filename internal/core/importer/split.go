package importer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/labops/internal/core/item"
)

// SplitRule expands one imported row into two items: a row whose
// description exactly equals Description becomes two copies with the
// variant field overwritten by Variants[0] and Variants[1]. One imported
// line can stand for two physically distinct sub-tests; the lab requests
// them as a single compound test.
type SplitRule struct {
	Description string    `yaml:"description"`
	Variants    [2]string `yaml:"variants"`
}

// DefaultSplitRules is the built-in rule table. Kept as data rather than
// buried conditionals so new compound tests are a one-line addition.
var DefaultSplitRules = []SplitRule{
	{Description: "pH & Conductivity", Variants: [2]string{"pH", "Conductivity"}},
}

// LoadSplitRules reads a YAML rule file and appends its rules to the
// built-in table. The file holds a list of {description, variants} docs.
func LoadSplitRules(path string) ([]SplitRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read split rules: %w", err)
	}

	var extra []SplitRule
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse split rules: %w", err)
	}
	for i, r := range extra {
		if r.Description == "" || r.Variants[0] == "" || r.Variants[1] == "" {
			return nil, fmt.Errorf("split rule %d is incomplete", i)
		}
	}

	return append(append([]SplitRule(nil), DefaultSplitRules...), extra...), nil
}

// Expand applies the first matching split rule to the item, returning two
// expanded items, or the item itself unchanged when no rule matches.
// Matching is exact on the trimmed description.
func Expand(it item.Item, rules []SplitRule) []item.Item {
	desc := strings.TrimSpace(it.Description())
	for _, r := range rules {
		if desc == r.Description {
			first := it.Clone()
			first.Set(item.FieldVariant, r.Variants[0])
			second := it.Clone()
			second.Set(item.FieldVariant, r.Variants[1])
			return []item.Item{first, second}
		}
	}
	return []item.Item{it}
}
