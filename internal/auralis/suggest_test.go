package auralis

import (
	"reflect"
	"testing"
)

func TestSuggestIntentList(t *testing.T) {
	got := Suggest(Detection{Intent: "pricing"}, nil)
	want := []string{"Compare pricing plans", "Schedule consultation", "View pricing FAQ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestGeneralFallback(t *testing.T) {
	got := Suggest(Detection{Intent: IntentGeneral}, nil)
	want := []string{"Explore services", "View portfolio", "Contact us"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestPagePrepend(t *testing.T) {
	ctx := NewContext("/contact", "", "")
	got := Suggest(Detection{Intent: "pricing"}, ctx)
	want := []string{"Schedule consultation", "Compare pricing plans", "View pricing FAQ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestPrependIsIdempotent(t *testing.T) {
	// "Schedule consultation" is already in the pricing list; a visitor on
	// /contact must not see it twice.
	ctx := NewContext("/contact", "", "")
	got := Suggest(Detection{Intent: "pricing"}, ctx)

	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	if seen["Schedule consultation"] != 1 {
		t.Fatalf("duplicate page suggestion: %v", got)
	}
	if got[0] != "Schedule consultation" {
		t.Fatalf("page suggestion not first: %v", got)
	}
}

func TestSuggestCap(t *testing.T) {
	ctx := NewContext("/services/web", "", "")
	got := Suggest(Detection{Intent: "web_development"}, ctx)
	if len(got) > 6 {
		t.Fatalf("len = %d, want at most 6: %v", len(got), got)
	}
	if got[0] != "Get detailed service info" {
		t.Fatalf("expected services page suggestion first: %v", got)
	}
}

func TestSuggestUnknownPage(t *testing.T) {
	ctx := NewContext("/blog/some-post", "", "")
	got := Suggest(Detection{Intent: "faq"}, ctx)
	want := []string{"Browse FAQ section", "Contact support", "Search knowledge base"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest = %v, want %v", got, want)
	}
}

