package catalog

import "testing"

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Tuls) != 17 {
		t.Fatalf("got %d tuls, want 17", len(c.Tuls))
	}
	if len(c.Exams) != 12 {
		t.Fatalf("got %d exams, want 12", len(c.Exams))
	}
	if len(c.Vocabulary) == 0 {
		t.Fatal("vocabulary is empty")
	}

	for _, tul := range c.Tuls {
		if tul.ID == "" || tul.Name == "" || tul.Moves <= 0 {
			t.Fatalf("incomplete tul: %+v", tul)
		}
	}
	for _, v := range c.Vocabulary {
		if v.Korean == "" || v.Meaning == "" || v.Category == "" {
			t.Fatalf("incomplete vocabulary item: %+v", v)
		}
	}
}

func TestLookups(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tul, ok := c.TulByID("chon-ji")
	if !ok {
		t.Fatal("chon-ji not found")
	}
	if tul.Moves != 19 {
		t.Fatalf("got %d moves, want 19", tul.Moves)
	}
	if _, ok := c.TulByID("nope"); ok {
		t.Fatal("unknown tul reported as found")
	}

	exam, ok := c.ExamByID("gup-9")
	if !ok {
		t.Fatal("gup-9 not found")
	}
	if exam.Rank == "" || exam.Belt == "" {
		t.Fatalf("incomplete exam: %+v", exam)
	}
}

func TestVocabularyByCategory(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	categories := c.Categories()
	if len(categories) == 0 {
		t.Fatal("no categories")
	}
	for _, cat := range categories {
		items := c.VocabularyByCategory(cat)
		if len(items) == 0 {
			t.Fatalf("category %q has no items", cat)
		}
		for _, v := range items {
			if v.Category != cat {
				t.Fatalf("item %q leaked into category %q", v.Korean, cat)
			}
		}
	}

	// Empty filter returns everything.
	if got := len(c.VocabularyByCategory("")); got != len(c.Vocabulary) {
		t.Fatalf("empty filter returned %d of %d items", got, len(c.Vocabulary))
	}
}
