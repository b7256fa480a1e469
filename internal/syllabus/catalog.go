// Package syllabus holds the static syllabus catalog and the canned
// question templates used to seed a paper.
package syllabus

import (
	_ "embed"
	"fmt"
	"strings"

	"question-paper/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed syllabus.yaml
var defaultDocument []byte

type document struct {
	Units []struct {
		Name   string `yaml:"name"`
		Topics []struct {
			Name       string `yaml:"name"`
			Difficulty string `yaml:"difficulty"`
		} `yaml:"topics"`
	} `yaml:"units"`
	Questions map[string]string `yaml:"questions"`
}

// Catalog is the read-only syllabus: units in declaration order, topics
// keyed by name, and the question template store.
type Catalog struct {
	units     []domain.Unit
	byName    map[string]domain.Topic
	templates Templates
}

// Templates maps a topic name to its canned question text.
type Templates map[string]string

// Lookup returns the canned question for a topic name.
func (t Templates) Lookup(name string) (string, bool) {
	text, ok := t[name]
	return text, ok
}

// FallbackQuestion is the text used for topics without a template.
func FallbackQuestion(name string) string {
	return "Write a question about: " + name
}

// Load parses a syllabus YAML document. Topic names must be unique across
// all units and every topic needs a known difficulty.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing syllabus: %w", err)
	}

	c := &Catalog{
		byName:    make(map[string]domain.Topic),
		templates: make(Templates, len(doc.Questions)),
	}
	for _, u := range doc.Units {
		if strings.TrimSpace(u.Name) == "" {
			return nil, fmt.Errorf("syllabus unit without a name")
		}
		unit := domain.Unit{Name: u.Name, Topics: make([]domain.Topic, 0, len(u.Topics))}
		for _, rawTopic := range u.Topics {
			difficulty, ok := domain.ParseDifficulty(rawTopic.Difficulty)
			if !ok {
				return nil, fmt.Errorf("topic %q: unknown difficulty %q", rawTopic.Name, rawTopic.Difficulty)
			}
			topic := domain.Topic{Name: rawTopic.Name, Difficulty: difficulty}
			if err := topic.Validate(); err != nil {
				return nil, fmt.Errorf("unit %s: %w", u.Name, err)
			}
			if _, dup := c.byName[topic.Name]; dup {
				return nil, fmt.Errorf("duplicate topic %q", topic.Name)
			}
			c.byName[topic.Name] = topic
			unit.Topics = append(unit.Topics, topic)
		}
		c.units = append(c.units, unit)
	}
	for name, text := range doc.Questions {
		c.templates[name] = strings.TrimSpace(text)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Load(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded syllabus is invalid: %v", err))
	}
	return c
}

// Units returns the units in syllabus order.
func (c *Catalog) Units() []domain.Unit {
	units := make([]domain.Unit, len(c.units))
	for i, u := range c.units {
		units[i] = domain.Unit{Name: u.Name, Topics: append([]domain.Topic(nil), u.Topics...)}
	}
	return units
}

func (c *Catalog) Topic(name string) (domain.Topic, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// QuestionText returns the template for the topic or the generic fallback.
func (c *Catalog) QuestionText(name string) string {
	if text, ok := c.templates.Lookup(name); ok && text != "" {
		return text
	}
	return FallbackQuestion(name)
}
