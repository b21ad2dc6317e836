package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Resource is one curated wellness resource (podcast, talk, exercise, tool).
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Link        string   `json:"link,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

type resourcesFile struct {
	Resources []Resource `json:"resources"`
}

type Catalog struct {
	mu        sync.RWMutex
	resources []Resource
}

func New(resources []Resource) *Catalog {
	return &Catalog{resources: resources}
}

// LoadFromFile reads the catalog from disk. A missing file is not an error:
// the built-in default set is used instead.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(defaultResources), nil
		}
		return nil, fmt.Errorf("failed to read resource catalog: %w", err)
	}

	var file resourcesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse resource catalog: %w", err)
	}

	return New(file.Resources), nil
}

func (c *Catalog) All() []Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

func (c *Catalog) ByCategory(category string) []Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Resource, 0)
	for _, r := range c.resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

var defaultResources = []Resource{
	{
		ID:          "mindful-kind",
		Title:       "The Mindful Kind",
		Author:      "Rachael Kable",
		Category:    "podcast",
		Description: "Simple, practical mindfulness tips for everyday life",
		Link:        "https://www.rachaelkable.com/podcast",
		Topics:      []string{"Mindfulness", "Stress Management", "Daily Practice"},
	},
	{
		ID:          "happiness-lab",
		Title:       "The Happiness Lab",
		Author:      "Dr. Laurie Santos",
		Category:    "podcast",
		Description: "Science-backed strategies to increase happiness and well-being",
		Link:        "https://www.pushkin.fm/podcasts/the-happiness-lab-with-dr-laurie-santos",
		Topics:      []string{"Positive Psychology", "Well-being", "Research"},
	},
	{
		ID:          "power-of-vulnerability",
		Title:       "The Power of Vulnerability",
		Author:      "Brené Brown",
		Category:    "video",
		Description: "Embracing vulnerability as the birthplace of courage and connection",
		Link:        "https://www.ted.com/talks/brene_brown_the_power_of_vulnerability",
	},
	{
		ID:          "ten-mindful-minutes",
		Title:       "All it takes is 10 mindful minutes",
		Author:      "Andy Puddicombe",
		Category:    "video",
		Description: "Introduction to mindfulness and meditation practice",
		Link:        "https://www.ted.com/talks/andy_puddicombe_all_it_takes_is_10_mindful_minutes",
	},
	{
		ID:          "challenge-catastrophic-thinking",
		Title:       "Challenge Catastrophic Thinking",
		Category:    "exercise",
		Description: "Ask yourself: what is the most realistic outcome, and what would I tell a friend in this situation?",
		Topics:      []string{"CBT", "Overthinking"},
	},
	{
		ID:          "positive-reframing",
		Title:       "Positive Reframing",
		Category:    "exercise",
		Description: "Write down the situation, then list one thing it teaches you or one way it could be worse",
		Topics:      []string{"CBT", "Resilience"},
	},
	{
		ID:          "cbt-basics",
		Title:       "Cognitive Behavioral Therapy (CBT) Basics",
		Category:    "tool",
		Description: "A primer on identifying and restructuring unhelpful thought patterns",
		Topics:      []string{"CBT"},
	},
}
