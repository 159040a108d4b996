package catalog

import (
	"testing"

	"github.com/vibeflip/vibeflip/pkg/language"
)

func TestBundledDecks(t *testing.T) {
	c := Load()
	for _, lang := range language.Supported() {
		deck := c.Deck(lang)
		if len(deck) == 0 {
			t.Errorf("%s deck is empty", lang)
		}
		seen := map[string]struct{}{}
		for _, cc := range deck {
			if cc.Text == "" {
				t.Errorf("%s deck card %s has no text", lang, cc.ID)
			}
			if _, dup := seen[cc.ID]; dup {
				t.Errorf("%s deck has duplicate id %s", lang, cc.ID)
			}
			seen[cc.ID] = struct{}{}
		}
	}
}

func TestDeckFallsBackToDefaultLanguage(t *testing.T) {
	c := Load()
	deck := c.Deck("Klingon")
	want := c.Deck(language.Default)
	if len(deck) == 0 || len(deck) != len(want) || deck[0].Text != want[0].Text {
		t.Fatal("unknown language should resolve to the default deck")
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`{"English": [
		{"id": "1", "text": "a", "category": "zen"},
		{"id": "1", "text": "b", "category": "bold"}
	]}`))
	if err == nil {
		t.Fatal("duplicate ids should be rejected")
	}
}

func TestParseRejectsMissingID(t *testing.T) {
	_, err := Parse([]byte(`{"English": [{"text": "a", "category": "zen"}]}`))
	if err == nil {
		t.Fatal("missing id should be rejected")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("malformed resource should fail parse")
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := Empty()
	if len(c.Deck(language.English)) != 0 {
		t.Fatal("empty catalog should expose empty decks")
	}
	if len(c.Languages()) != 0 {
		t.Fatal("empty catalog should list no languages")
	}
}

func TestLanguages(t *testing.T) {
	c := Load()
	langs := c.Languages()
	if len(langs) != len(language.Supported()) {
		t.Fatalf("languages: %v", langs)
	}
}
