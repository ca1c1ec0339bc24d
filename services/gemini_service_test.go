package services

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestGemini(srv *httptest.Server) *GeminiService {
	return &GeminiService{
		apiKey: "test-key",
		apiURL: srv.URL,
		client: &http.Client{Timeout: 2 * time.Second},
	}
}

func geminiTextServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingGemini(t *testing.T) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	return newTestGemini(srv)
}

func TestCleanMenuText(t *testing.T) {
	srv := geminiTextServer(t, "1. Veg Biryani\n2) Dal Tadka\n- ignore this note\n* and this\n\nRaita\nOk\n3. Papad")
	got, err := newTestGemini(srv).CleanMenuText("MENU lunch rs.40 ...")
	if err != nil {
		t.Fatalf("CleanMenuText: %v", err)
	}
	// bullets dropped, numbering stripped, two-char lines dropped
	want := []string{"Veg Biryani", "Dal Tadka", "Raita", "Papad"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanMenuText = %v, want %v", got, want)
	}
}

func TestCleanMenuTextError(t *testing.T) {
	if _, err := failingGemini(t).CleanMenuText("menu"); err == nil {
		t.Error("want error when the API rejects the call")
	}
}

func TestSplitMenuText(t *testing.T) {
	got := SplitMenuText("rice, dal tadka\npaneer butter masala, ok\n")
	want := []string{"rice", "dal tadka", "paneer butter masala"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMenuText = %v, want %v", got, want)
	}
}

func TestClassifyFoodItemsParsesJSON(t *testing.T) {
	srv := geminiTextServer(t, "Here you go:\n{\"items\":[{\"name\":\"idli\",\"category\":\"Breakfast\"}]}\nHope that helps!")
	got := newTestGemini(srv).ClassifyFoodItems([]string{"idli"})
	items, ok := got["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("ClassifyFoodItems = %v", got)
	}
	first, _ := items[0].(map[string]any)
	if first["category"] != "Breakfast" {
		t.Errorf("category = %v, want Breakfast", first["category"])
	}
}

func TestClassifyFoodItemsFallback(t *testing.T) {
	got := failingGemini(t).ClassifyFoodItems([]string{"masala tea", "samosa", "mutton korma"})
	items, ok := got["items"].([]map[string]any)
	if !ok {
		t.Fatalf("fallback shape = %T", got["items"])
	}
	wantCats := []string{"Beverages", "Snacks", "Main Course"}
	for i, cat := range wantCats {
		if items[i]["category"] != cat {
			t.Errorf("items[%d].category = %v, want %s", i, items[i]["category"], cat)
		}
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`prefix {"a":1} suffix`, `{"a":1}`, true},
		{`{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{`no braces here`, "", false},
		{`} reversed {`, "", false},
	}
	for _, tt := range tests {
		got, ok := extractJSONObject(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractJSONObject(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		item string
		want string
	}{
		{"Masala Tea", "Beverages"},
		{"Aloo Paratha", "Breakfast"},
		{"Jeera Rice", "Lunch/Dinner"},
		{"Samosa", "Snacks"},
		{"Fish Fry", "Main Course"},
	}
	for _, tt := range tests {
		if got := guessCategory(tt.item); got != tt.want {
			t.Errorf("guessCategory(%q) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestChatResponseFallback(t *testing.T) {
	got := failingGemini(t).ChatResponse("what should I eat?", nil)
	if !strings.Contains(got, "trouble connecting") {
		t.Errorf("ChatResponse fallback = %q", got)
	}
}

func TestSuggestAlternativesFallback(t *testing.T) {
	got := failingGemini(t).SuggestAlternatives([]string{"samosa"})
	if !strings.Contains(got, "brown rice") {
		t.Errorf("SuggestAlternatives fallback = %q", got)
	}
}

func TestChatResponseIncludesContext(t *testing.T) {
	var sawContext bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "meal data") {
			sawContext = true
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Eat more dal!"}]}}]}`)
	}))
	defer srv.Close()

	got := newTestGemini(srv).ChatResponse("how is my day?", map[string]any{"calories": 900})
	if got != "Eat more dal!" {
		t.Errorf("ChatResponse = %q", got)
	}
	if !sawContext {
		t.Error("prompt should embed today's meal data when context is given")
	}
}
