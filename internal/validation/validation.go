package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/flipdeck/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyField       ConflictType = "empty_field"
	ConflictDuplicatePrompt  ConflictType = "duplicate_prompt"
	ConflictMissingItem      ConflictType = "missing_item"
	ConflictOverlappingSets  ConflictType = "overlapping_sets"
	ConflictOrphanedProgress ConflictType = "orphaned_progress"
)

// Conflict represents a problem found in the deck, catalog or progress
type Conflict struct {
	Type        ConflictType
	Description string
	ItemIDs     []int
	SetIDs      []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Count returns the number of conflicts of the given type
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Validator checks a deck against its catalog and stored progress
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateDeck checks items for blank fields and repeated prompts
func (v *Validator) ValidateDeck(items []models.Item) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	prompts := make(map[string][]int)
	for _, item := range items {
		var missing []string
		if strings.TrimSpace(item.Prompt) == "" {
			missing = append(missing, "prompt")
		}
		if strings.TrimSpace(item.Answer) == "" {
			missing = append(missing, "answer")
		}
		if len(missing) > 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyField,
				Description: fmt.Sprintf("Item %d has an empty %s", item.ID, strings.Join(missing, " and ")),
				ItemIDs:     []int{item.ID},
			})
			continue
		}
		prompts[item.Prompt] = append(prompts[item.Prompt], item.ID)
	}

	// map order is random; report in prompt order so output is stable
	keys := make([]string, 0, len(prompts))
	for p := range prompts {
		keys = append(keys, p)
	}
	sort.Strings(keys)
	for _, p := range keys {
		if ids := prompts[p]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicatePrompt,
				Description: fmt.Sprintf("Duplicate prompt: %q (IDs: %v)", p, ids),
				ItemIDs:     ids,
			})
		}
	}

	return result
}

// ValidateCatalog reports set ranges that cover ids absent from the deck
// and sets whose ranges overlap.
func (v *Validator) ValidateCatalog(items []models.Item, catalog models.Catalog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[int]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	sets := catalog.Sets()
	for _, set := range sets {
		var missing []int
		for _, id := range set.IDs() {
			if !known[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingItem,
				Description: fmt.Sprintf("Set %q covers %d id(s) missing from the deck: %s", set.ID, len(missing), formatIDs(missing)),
				ItemIDs:     missing,
				SetIDs:      []string{set.ID},
			})
		}
	}

	sorted := make([]models.StudySet, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range[0] < sorted[j].Range[0]
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Range[0] <= prev.Range[1] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOverlappingSets,
				Description: fmt.Sprintf("Sets %q and %q overlap (%d-%d)", prev.ID, cur.ID, cur.Range[0], min(prev.Range[1], cur.Range[1])),
				SetIDs:      []string{prev.ID, cur.ID},
			})
		}
	}

	return result
}

// ValidateProgress reports stored scores for ids the deck no longer has.
// Orphaned scores are harmless but usually mean the deck was renumbered.
func (v *Validator) ValidateProgress(items []models.Item, scores map[int]int) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[int]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	var orphaned []int
	for id := range scores {
		if !known[id] {
			orphaned = append(orphaned, id)
		}
	}
	if len(orphaned) == 0 {
		return result
	}
	sort.Ints(orphaned)

	result.Conflicts = append(result.Conflicts, Conflict{
		Type:        ConflictOrphanedProgress,
		Description: fmt.Sprintf("Progress recorded for %d id(s) not in the deck: %s", len(orphaned), formatIDs(orphaned)),
		ItemIDs:     orphaned,
	})
	return result
}

// ValidateAll runs every check and merges the results
func (v *Validator) ValidateAll(items []models.Item, catalog models.Catalog, scores map[int]int) ValidationResult {
	result := v.ValidateDeck(items)
	result.Conflicts = append(result.Conflicts, v.ValidateCatalog(items, catalog).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateProgress(items, scores).Conflicts...)
	return result
}

// formatIDs lists up to ten ids, then a count of the rest
func formatIDs(ids []int) string {
	const limit = 10
	parts := make([]string, 0, limit+1)
	for i, id := range ids {
		if i == limit {
			parts = append(parts, fmt.Sprintf("and %d more", len(ids)-limit))
			break
		}
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
