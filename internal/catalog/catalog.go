// Package catalog loads the bundled reference data: the tul list, the
// exam/belt ladder, and the Korean vocabulary. All of it is read-only at
// runtime.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/tuls.yaml
var tulsRaw []byte

//go:embed data/exams.yaml
var examsRaw []byte

//go:embed data/vocabulary.yaml
var vocabularyRaw []byte

// Tul is one named practice form.
type Tul struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Korean  string `yaml:"korean"`
	Moves   int    `yaml:"moves"`
	Belt    string `yaml:"belt"`
	Meaning string `yaml:"meaning"`
}

// Exam is one rank in the belt ladder, ordered lowest first.
type Exam struct {
	ID   string `yaml:"id"`
	Rank string `yaml:"rank"`
	Belt string `yaml:"belt"`
}

// VocabularyItem is one Korean term with its translation.
type VocabularyItem struct {
	Korean    string `yaml:"korean"`
	Romanized string `yaml:"romanized"`
	Meaning   string `yaml:"meaning"`
	Category  string `yaml:"category"`
}

// Catalog bundles all reference data.
type Catalog struct {
	Tuls       []Tul
	Exams      []Exam
	Vocabulary []VocabularyItem
}

// Load parses the embedded reference data. It fails only on a broken
// build (malformed embedded YAML or duplicate ids).
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(tulsRaw, &c.Tuls); err != nil {
		return nil, fmt.Errorf("failed to parse tul catalog: %w", err)
	}
	if err := yaml.Unmarshal(examsRaw, &c.Exams); err != nil {
		return nil, fmt.Errorf("failed to parse exam catalog: %w", err)
	}
	if err := yaml.Unmarshal(vocabularyRaw, &c.Vocabulary); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	seen := map[string]struct{}{}
	for _, t := range c.Tuls {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("duplicate tul id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	seen = map[string]struct{}{}
	for _, e := range c.Exams {
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate exam id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return c, nil
}

// TulByID returns the tul with the given id.
func (c *Catalog) TulByID(id string) (Tul, bool) {
	for _, t := range c.Tuls {
		if t.ID == id {
			return t, true
		}
	}
	return Tul{}, false
}

// ExamByID returns the exam with the given id.
func (c *Catalog) ExamByID(id string) (Exam, bool) {
	for _, e := range c.Exams {
		if e.ID == id {
			return e, true
		}
	}
	return Exam{}, false
}

// VocabularyByCategory returns the items in one category, or everything
// when category is empty.
func (c *Catalog) VocabularyByCategory(category string) []VocabularyItem {
	if category == "" {
		return c.Vocabulary
	}
	var items []VocabularyItem
	for _, v := range c.Vocabulary {
		if v.Category == category {
			items = append(items, v)
		}
	}
	return items
}

// Categories returns the distinct vocabulary categories in sorted order.
func (c *Catalog) Categories() []string {
	set := map[string]struct{}{}
	for _, v := range c.Vocabulary {
		set[v.Category] = struct{}{}
	}
	cats := make([]string, 0, len(set))
	for cat := range set {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
