package content

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/models"
)

// LoadCatalog reads a YAML study-set catalog
func LoadCatalog(path string) (models.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cat models.Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return models.Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := validateCatalog(cat); err != nil {
		return models.Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

func validateCatalog(cat models.Catalog) error {
	seen := map[string]bool{}
	for _, set := range cat.Sets() {
		if set.ID == "" {
			return fmt.Errorf("set %q has no id", set.Title)
		}
		if seen[set.ID] {
			return fmt.Errorf("duplicate set id %q", set.ID)
		}
		seen[set.ID] = true
		if set.Range[1] < set.Range[0] {
			return fmt.Errorf("set %q has an empty range %v", set.ID, set.Range)
		}
	}
	return nil
}

// DefaultCatalog chunks the deck's ids, in ascending order, into sets of
// size. It is used when no catalog file is configured.
func DefaultCatalog(items []models.Item, size int) models.Catalog {
	if size <= 0 {
		size = constants.DefaultSetSize
	}

	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	slices.Sort(ids)

	section := models.Section{ID: "all", Title: "All items"}
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids)) - 1
		first, last := ids[start], ids[end]
		section.Sets = append(section.Sets, models.StudySet{
			ID:    fmt.Sprintf("%d-%d", first, last),
			Title: fmt.Sprintf("Set %d", start/size+1),
			Range: [2]int{first, last},
		})
	}

	return models.Catalog{Chapters: []models.Chapter{{
		ID:       "deck",
		Title:    "Deck",
		Sections: []models.Section{section},
	}}}
}

// ItemsInRange returns the items whose id falls in [start, end]
func ItemsInRange(items []models.Item, start, end int) []models.Item {
	var out []models.Item
	for _, it := range items {
		if it.ID >= start && it.ID <= end {
			out = append(out, it)
		}
	}
	return out
}
