package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

//go:embed modules.json
var modulesJSON []byte

// BlockType tags the kind of a content block.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockScenario  BlockType = "scenario"
	BlockReveal    BlockType = "reveal"
)

// ContentBlock is one block of module content. Which fields are populated
// depends on Type: Text for heading/paragraph, Items for list, Title+Body
// for scenario/reveal.
type ContentBlock struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
	Title string    `json:"title,omitempty"`
	Body  string    `json:"body,omitempty"`
}

// Question is a single quiz question. Options may be empty, in which case
// the implicit option set is {"True", "False"}.
type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// trueFalseChoices is the implicit option set for questions without options.
var trueFalseChoices = []string{"True", "False"}

// Choices returns the selectable options for the question.
func (q Question) Choices() []string {
	if len(q.Options) > 0 {
		return slices.Clone(q.Options)
	}
	return slices.Clone(trueFalseChoices)
}

// Quiz is the assessment embedded in a module.
type Quiz struct {
	Questions []Question `json:"questions"`
	// PassingScore is the integer percentage threshold (0-100).
	PassingScore int `json:"passingScore"`
	// MaxAttempts is the number of retries allowed after the first try.
	MaxAttempts int `json:"maxAttempts"`
}

// Module is one training module: content plus its quiz. Position in the
// catalog order determines the unlock chain.
type Module struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     []ContentBlock `json:"content"`
	Quiz        Quiz           `json:"quiz"`
}

// Catalog is the ordered, immutable set of training modules.
type Catalog struct {
	modules []Module
	byID    map[string]int
}

// Load parses and validates a catalog from raw JSON.
func Load(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var modules []Module
	if err := json.Unmarshal(raw, &modules); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		modules: modules,
		byID:    make(map[string]int, len(modules)),
	}
	for i, m := range modules {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID)
		}
		c.byID[m.ID] = i
	}

	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// check enforces the semantic rules the schema cannot express.
func (c *Catalog) check() error {
	for _, m := range c.modules {
		if m.Quiz.PassingScore < 0 || m.Quiz.PassingScore > 100 {
			return fmt.Errorf("module %q: passingScore %d out of range", m.ID, m.Quiz.PassingScore)
		}
		if m.Quiz.MaxAttempts < 1 {
			return fmt.Errorf("module %q: maxAttempts must be positive", m.ID)
		}
		if len(m.Quiz.Questions) == 0 {
			return fmt.Errorf("module %q: quiz has no questions", m.ID)
		}
		seen := make(map[string]bool, len(m.Quiz.Questions))
		for _, q := range m.Quiz.Questions {
			if seen[q.ID] {
				return fmt.Errorf("module %q: duplicate question id %q", m.ID, q.ID)
			}
			seen[q.ID] = true
			if !slices.Contains(q.Choices(), q.Answer) {
				return fmt.Errorf("module %q question %q: answer %q is not an option", m.ID, q.ID, q.Answer)
			}
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded training catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(modulesJSON)
	})
	return defaultCatalog, defaultErr
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// Modules returns the modules in catalog order.
func (c *Catalog) Modules() []Module {
	return slices.Clone(c.modules)
}

// ByID returns the module with the given id.
func (c *Catalog) ByID(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

// Successor returns the module immediately after id in catalog order.
// The second result is false for the last module or an unknown id.
func (c *Catalog) Successor(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok || i+1 >= len(c.modules) {
		return Module{}, false
	}
	return c.modules[i+1], true
}
