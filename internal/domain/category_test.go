package domain

import "testing"

func TestParseCategory_Known(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		got, ok := ParseCategory(string(c))
		if !ok {
			t.Errorf("ParseCategory(%q): ok = false", c)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}
}

func TestParseCategory_UnknownCoercesToOther(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "nightmare", "Fear", "OTHER", "korku"} {
		got, ok := ParseCategory(raw)
		if ok {
			t.Errorf("ParseCategory(%q): ok = true", raw)
		}
		if got != CategoryOther {
			t.Errorf("ParseCategory(%q) = %q, want %q", raw, got, CategoryOther)
		}
	}
}

func TestParseCategory_AllSentinelNeverPersistable(t *testing.T) {
	t.Parallel()

	got, ok := ParseCategory(string(CategoryAll))
	if ok || got != CategoryOther {
		t.Fatalf("ParseCategory(all) = (%q, %v), want (other, false)", got, ok)
	}
	if CategoryAll.Valid() {
		t.Fatal("CategoryAll.Valid() = true; the filter sentinel must not be storable")
	}
}

func TestCategoryIndex_FollowsDeclarationOrder(t *testing.T) {
	t.Parallel()

	if CategoryIndex(CategoryFear) != 0 {
		t.Errorf("CategoryIndex(fear) = %d, want 0", CategoryIndex(CategoryFear))
	}
	if CategoryIndex(CategoryOther) != len(Categories)-1 {
		t.Errorf("CategoryIndex(other) = %d, want %d", CategoryIndex(CategoryOther), len(Categories)-1)
	}
	if CategoryIndex(CategoryAll) != len(Categories) {
		t.Errorf("CategoryIndex(all) = %d, want %d", CategoryIndex(CategoryAll), len(Categories))
	}
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	if ParseLocale("en") != LocaleEN {
		t.Error(`ParseLocale("en") != LocaleEN`)
	}
	for _, raw := range []string{"tr", "", "de", "TR"} {
		if ParseLocale(raw) != LocaleTR {
			t.Errorf("ParseLocale(%q) != LocaleTR", raw)
		}
	}
}
