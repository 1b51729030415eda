package match

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Item Name", "item_name"},
		{"item-name", "item_name"},
		{"item_name", "item_name"},
		{"ITEM NAME", "item_name"},
		{"  Item   Name  ", "item_name"},

		// Mixed separators
		{"Item - Name", "item_name"},
		{"item\tname", "item_name"},
		{"bullet_point1", "bullet_point1"},
		{"Bullet Point 1", "bullet_point_1"},

		// Punctuation is dropped
		{"Standard Price ($)", "standard_price_"},
		{"Seller SKU#", "seller_sku"},
		{"Main Image URL:", "main_image_url"},

		// Edge cases
		{"", ""},
		{"   ", ""},
		{"-", "_"},
		{"Größe", "gre"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Item Name",
		"item-name",
		"Parent SKU",
		"other_image_url3",
		"  Metal -- Stamp ",
		"a _ b",
		"Price ($)",
	}

	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)

		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestSlugifyAll(t *testing.T) {
	got := SlugifyAll([]string{"SKU", "Parent SKU", "item-name"})
	want := []string{"sku", "parent_sku", "item_name"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SlugifyAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
