package navigation

import (
	"testing"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/shell"
)

func TestMenuResolvesAgainstCatalog(t *testing.T) {
	if err := Validate(catalog.Default()); err != nil {
		t.Fatalf("menu has dangling ids: %v", err)
	}
}

func TestMenuCoversEveryCategory(t *testing.T) {
	cat := catalog.Default()
	seen := map[catalog.Category]int{}
	for _, item := range Items() {
		s, _ := cat.Get(item.ID)
		seen[s.Category]++
	}
	if seen[catalog.Frontend] != 3 || seen[catalog.Backend] != 4 {
		t.Errorf("unexpected category coverage: %v", seen)
	}
}

func TestViewMarksExactlyOneActive(t *testing.T) {
	for _, id := range catalog.IDs() {
		active := 0
		for _, g := range View(id) {
			for _, item := range g.Items {
				if item.Active {
					active++
					if item.ID != id {
						t.Errorf("View(%q) marked %q active", id, item.ID)
					}
				}
			}
		}
		if active != 1 {
			t.Errorf("View(%q) marked %d items active", id, active)
		}
	}
}

func TestViewUnknownIDMarksNothing(t *testing.T) {
	for _, g := range View("backend-cache") {
		for _, item := range g.Items {
			if item.Active {
				t.Errorf("unexpected active item %q", item.ID)
			}
		}
	}
}

func TestItemIntentsComeFromNav(t *testing.T) {
	for _, g := range View(catalog.FrontendModel) {
		for _, item := range g.Items {
			if item.Intent.Kind != shell.KindSelect || item.Intent.ID != item.ID || item.Intent.Source != shell.SourceNav {
				t.Errorf("item %q has intent %+v", item.ID, item.Intent)
			}
		}
	}
}

func TestGroupOrder(t *testing.T) {
	gs := Groups()
	if len(gs) != 2 || gs[0].Label != "Frontend" || gs[1].Label != "Backend" {
		t.Fatalf("unexpected groups: %+v", gs)
	}
	gs[0].Items[0].Title = "mutated"
	if Groups()[0].Items[0].Title == "mutated" {
		t.Error("Groups must return a copy")
	}
}
