package content

import (
	"slices"
	"testing"

	"github.com/julianstephens/flipdeck/internal/models"
)

const catalogYAML = `
chapters:
  - id: ancient
    title: Ancient
    sections:
      - id: nara
        title: Nara period
        sets:
          - id: nara-1
            title: Capital and court
            range: [1, 3]
          - id: nara-2
            title: Temples
            range: [4, 6]
  - id: medieval
    title: Medieval
    sections:
      - id: kamakura
        title: Kamakura
        sets:
          - id: kamakura-1
            title: Shogunate
            range: [7, 9]
`

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeFile(t, "catalog.yaml", catalogYAML))
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}

	sets := cat.Sets()
	if len(sets) != 3 {
		t.Fatalf("Sets() returned %d sets, want 3", len(sets))
	}
	set, ok := cat.FindSet("nara-2")
	if !ok {
		t.Fatal("FindSet(nara-2) not found")
	}
	if !slices.Equal(set.IDs(), []int{4, 5, 6}) {
		t.Errorf("IDs() = %v, want [4 5 6]", set.IDs())
	}
	if set.Label() != "Temples (4-6)" {
		t.Errorf("Label() = %q", set.Label())
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not yaml", "chapters: [unclosed"},
		{"duplicate ids", `
chapters:
  - sections:
      - sets:
          - {id: a, title: A, range: [1, 2]}
          - {id: a, title: B, range: [3, 4]}
`},
		{"reversed range", `
chapters:
  - sections:
      - sets:
          - {id: a, title: A, range: [5, 2]}
`},
		{"missing id", `
chapters:
  - sections:
      - sets:
          - {title: A, range: [1, 2]}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCatalog(writeFile(t, "catalog.yaml", tt.body)); err == nil {
				t.Error("LoadCatalog() succeeded, want error")
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	items := make([]models.Item, 0, 7)
	for _, id := range []int{5, 1, 2, 7, 3, 4, 6} {
		items = append(items, models.Item{ID: id})
	}

	sets := DefaultCatalog(items, 3).Sets()
	want := [][2]int{{1, 3}, {4, 6}, {7, 7}}
	if len(sets) != len(want) {
		t.Fatalf("DefaultCatalog() gave %d sets, want %d", len(sets), len(want))
	}
	for i := range want {
		if sets[i].Range != want[i] {
			t.Errorf("set %d range = %v, want %v", i, sets[i].Range, want[i])
		}
	}
	if sets[0].Title != "Set 1" || sets[2].ID != "7-7" {
		t.Errorf("unexpected set naming: %+v", sets)
	}

	if got := DefaultCatalog(nil, 0).Sets(); len(got) != 0 {
		t.Errorf("DefaultCatalog(nil) = %v, want no sets", got)
	}
}

func TestItemsInRange(t *testing.T) {
	items := []models.Item{{ID: 1}, {ID: 4}, {ID: 5}, {ID: 9}}
	got := ItemsInRange(items, 4, 8)
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 5 {
		t.Errorf("ItemsInRange() = %+v, want ids 4 and 5", got)
	}
}
