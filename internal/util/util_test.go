package util

import (
	"testing"
)

const fallbackPhone = "6281234567890"

func TestExtractWhatsAppPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contact  string
		expected string
	}{
		{name: "leading zero becomes country code", contact: "0812-3456-789", expected: "628123456789"},
		{name: "already international", contact: "+62 812 3456 789", expected: "628123456789"},
		{name: "bare mobile prefix", contact: "812345678", expected: "62812345678"},
		{name: "parenthetical stripped", contact: "0812345678 (WA only)", expected: "62812345678"},
		{name: "instagram handle falls back", contact: "@warungkopi.id", expected: fallbackPhone},
		{name: "empty falls back", contact: "", expected: fallbackPhone},
		{name: "text only falls back", contact: "DM via Instagram", expected: fallbackPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractWhatsAppPhone(tt.contact, fallbackPhone); got != tt.expected {
				t.Fatalf("ExtractWhatsAppPhone(%q) = %s, want %s", tt.contact, got, tt.expected)
			}
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	t.Parallel()

	got := WhatsAppLink("62812345678", "Halo, saya mau pesan")
	want := "https://wa.me/62812345678?text=Halo%2C+saya+mau+pesan"
	if got != want {
		t.Fatalf("WhatsAppLink() = %s, want %s", got, want)
	}
}

func TestNormalizeCategoryKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		expected string
	}{
		{name: "lower cases", category: "Kuliner", expected: "kuliner"},
		{name: "whitespace to hyphen", category: "Jasa Desain", expected: "jasa-desain"},
		{name: "collapses runs", category: "  Fashion   dan  Aksesoris ", expected: "fashion-dan-aksesoris"},
		{name: "already canonical", category: "jasa-desain", expected: "jasa-desain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeCategoryKey(tt.category); got != tt.expected {
				t.Fatalf("NormalizeCategoryKey(%q) = %s, want %s", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategoryMatches(t *testing.T) {
	t.Parallel()

	if !CategoryMatches("Jasa Desain", "jasa-desain") {
		t.Fatal("expected 'Jasa Desain' to match tab 'jasa-desain'")
	}
	if CategoryMatches("Kuliner", "jasa-desain") {
		t.Fatal("expected 'Kuliner' not to match tab 'jasa-desain'")
	}
}

func TestHighlightMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		query    string
		expected string
	}{
		{name: "single match", text: "Kopi susu enak", query: "susu", expected: "Kopi <mark>susu</mark> enak"},
		{name: "case preserved", text: "Kopi Susu", query: "susu", expected: "Kopi <mark>Susu</mark>"},
		{name: "multiple matches", text: "kopi kopi", query: "kopi", expected: "<mark>kopi</mark> <mark>kopi</mark>"},
		{name: "no match", text: "Roti bakar", query: "kopi", expected: "Roti bakar"},
		{name: "empty query", text: "Roti bakar", query: "", expected: "Roti bakar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HighlightMatches(tt.text, tt.query); got != tt.expected {
				t.Fatalf("HighlightMatches(%q, %q) = %s, want %s", tt.text, tt.query, got, tt.expected)
			}
		})
	}
}
