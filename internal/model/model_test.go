package model_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/olm/internal/model"
)

func TestNewLink_AssignsID(t *testing.T) {
	a := model.NewLink(model.NewLinkParams{Title: "Market", URL: "http://a.onion"})
	b := model.NewLink(model.NewLinkParams{Title: "Market", URL: "http://a.onion"})

	if a.ID == "" {
		t.Fatal("expected generated ID")
	}
	if a.ID == b.ID {
		t.Error("expected distinct IDs for distinct links")
	}
}

func TestStore_Add(t *testing.T) {
	store := model.NewStore(true)

	link, ok := store.Add("Market", "http://a.onion")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if link.Title != "Market" || link.URL != "http://a.onion" {
		t.Errorf("unexpected link %+v", link)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 link, got %d", store.Len())
	}
}

func TestStore_Add_RejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"empty title", "", "http://a.onion"},
		{"empty url", "Market", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := model.NewStore(true)
			store.Add("Existing", "http://e.onion")

			if _, ok := store.Add(tt.title, tt.url); ok {
				t.Error("expected add to be rejected")
			}
			if store.Len() != 1 {
				t.Errorf("store changed: %d links", store.Len())
			}
			if store.Links[0].URL != "http://e.onion" {
				t.Error("existing link was modified")
			}
		})
	}
}

func TestStore_Add_UniqueTitlesOverwrites(t *testing.T) {
	store := model.NewStore(true)
	first, _ := store.Add("Market", "http://a.onion")

	second, ok := store.Add("Market", "http://b.onion")
	if !ok {
		t.Fatal("expected overwrite to succeed")
	}

	if store.Len() != 1 {
		t.Fatalf("expected 1 link, got %d", store.Len())
	}
	if store.Links[0].URL != "http://b.onion" {
		t.Errorf("expected URL to be replaced, got %q", store.Links[0].URL)
	}
	if second.ID != first.ID {
		t.Error("overwrite should keep the link identity")
	}
}

func TestStore_Add_ListAllowsDuplicates(t *testing.T) {
	store := model.NewStore(false)
	store.Add("Market", "http://a.onion")
	store.Add("Market", "http://a.onion")

	if store.Len() != 2 {
		t.Errorf("expected 2 links, got %d", store.Len())
	}
}

func TestStore_Edit_SameTitleUpdatesURL(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	link, err := store.Edit("Market", "Market", "http://b.onion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Len() != 1 {
		t.Errorf("expected 1 link, got %d", store.Len())
	}
	if link.URL != "http://b.onion" || store.Get("Market").URL != "http://b.onion" {
		t.Error("expected URL to be updated")
	}
}

func TestStore_Edit_Rename(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	if _, err := store.Edit("Market", "Bazaar", "http://b.onion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Get("Market") != nil {
		t.Error("old title should be gone")
	}
	bazaar := store.Get("Bazaar")
	if bazaar == nil || bazaar.URL != "http://b.onion" {
		t.Errorf("expected Bazaar -> http://b.onion, got %+v", bazaar)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 link, got %d", store.Len())
	}
}

func TestStore_Edit_RenameCollisionRejected(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")
	store.Add("Bazaar", "http://b.onion")

	_, err := store.Edit("Market", "Bazaar", "http://c.onion")
	if !errors.Is(err, model.ErrTitleConflict) {
		t.Fatalf("expected ErrTitleConflict, got %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("expected 2 links, got %d", store.Len())
	}
	if store.Get("Market").URL != "http://a.onion" || store.Get("Bazaar").URL != "http://b.onion" {
		t.Error("rejected edit must not modify links")
	}
}

func TestStore_Edit_RenameCollisionOverwrite(t *testing.T) {
	store := model.NewStore(true)
	store.OnConflict = model.ConflictOverwrite
	store.Add("Market", "http://a.onion")
	store.Add("Bazaar", "http://b.onion")
	store.Add("Forum", "http://f.onion")

	if _, err := store.Edit("Forum", "Market", "http://c.onion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("expected size to shrink to 2, got %d", store.Len())
	}
	if store.Get("Forum") != nil {
		t.Error("old title should be gone")
	}
	if store.Get("Market").URL != "http://c.onion" {
		t.Errorf("expected Market -> http://c.onion, got %q", store.Get("Market").URL)
	}
}

func TestStore_Edit_ListAllowsCollision(t *testing.T) {
	store := model.NewStore(false)
	store.Add("Market", "http://a.onion")
	store.Add("Bazaar", "http://b.onion")

	if _, err := store.Edit("Market", "Bazaar", "http://c.onion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 links, got %d", store.Len())
	}
}

func TestStore_Edit_Errors(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	if _, err := store.Edit("Missing", "X", "http://x.onion"); !errors.Is(err, model.ErrLinkNotFound) {
		t.Errorf("expected ErrLinkNotFound, got %v", err)
	}
	if _, err := store.Edit("Market", "", "http://x.onion"); !errors.Is(err, model.ErrEmptyField) {
		t.Errorf("expected ErrEmptyField, got %v", err)
	}
	if _, err := store.Edit("Market", "Market", ""); !errors.Is(err, model.ErrEmptyField) {
		t.Errorf("expected ErrEmptyField, got %v", err)
	}
}

func TestStore_EditByID_KeepsPosition(t *testing.T) {
	store := model.NewStore(true)
	store.Add("A", "http://a.onion")
	b, _ := store.Add("B", "http://b.onion")
	store.Add("C", "http://c.onion")

	if _, err := store.EditByID(b.ID, "Z", "http://z.onion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "Z", "C"}
	for i, title := range store.Titles() {
		if title != want[i] {
			t.Errorf("position %d: got %q, want %q", i, title, want[i])
		}
	}
	if store.Links[1].ID != b.ID {
		t.Error("expected ID to survive the rename")
	}
}

func TestStore_Delete_Idempotent(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")
	store.Add("Bazaar", "http://b.onion")

	if !store.Delete("Market") {
		t.Error("expected first delete to report removal")
	}
	if store.Delete("Market") {
		t.Error("expected second delete to be a no-op")
	}
	if store.Len() != 1 || store.Links[0].Title != "Bazaar" {
		t.Errorf("unexpected store contents: %+v", store.Links)
	}
}

func TestStore_DeleteByID(t *testing.T) {
	store := model.NewStore(false)
	first, _ := store.Add("Market", "http://a.onion")
	second, _ := store.Add("Market", "http://b.onion")

	if !store.DeleteByID(second.ID) {
		t.Fatal("expected delete to succeed")
	}
	if store.Len() != 1 || store.Links[0].ID != first.ID {
		t.Error("wrong link removed")
	}
	if store.DeleteByID(second.ID) {
		t.Error("expected second delete to be a no-op")
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	clone := store.Clone()
	clone.Links[0].URL = "http://changed.onion"

	if store.Links[0].URL != "http://a.onion" {
		t.Error("clone shares backing array with original")
	}
}

func TestStore_HasURL(t *testing.T) {
	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	if !store.HasURL("http://a.onion") {
		t.Error("expected to find existing URL")
	}
	if store.HasURL("http://b.onion") {
		t.Error("should not find non-existing URL")
	}
}
