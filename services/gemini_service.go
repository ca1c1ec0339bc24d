package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"backend/config"
	"backend/logger"
	"backend/models"
)

// GeminiService wraps the Gemini generateContent endpoint. Callers that can
// tolerate a missing narrative use the *-with-fallback helpers; everything
// else surfaces the error.
type GeminiService struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewGeminiService() *GeminiService {
	base := os.Getenv("GEMINI_API_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
	}
	return &GeminiService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		apiURL: base,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) call(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	req, err := http.NewRequest("POST", g.apiURL+"?key="+g.apiKey, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// CleanMenuText asks the model to strip prices/timings from raw menu text
// and returns one food item per line.
func (g *GeminiService) CleanMenuText(raw string) ([]string, error) {
	resp, err := g.call(config.PromptCleanMenu + raw)
	if err != nil {
		return nil, err
	}
	return parseMenuLines(resp), nil
}

var listPrefix = regexp.MustCompile(`^[\d.)\-*]+\s*`)

// parseMenuLines turns a model response into a list of item names: one per
// line, numbering and bullet prefixes stripped, trivia dropped.
func parseMenuLines(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			continue
		}
		line = strings.TrimSpace(listPrefix.ReplaceAllString(line, ""))
		if len(line) > 2 {
			items = append(items, line)
		}
	}
	return items
}

// SplitMenuText is the degraded path when the model is unreachable: split
// typed input on newlines and commas.
func SplitMenuText(raw string) []string {
	var items []string
	for _, line := range strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == ',' }) {
		line = strings.TrimSpace(line)
		if len(line) > 2 {
			items = append(items, line)
		}
	}
	return items
}

// ClassifyFoodItems returns the model's JSON classification of the items.
// The model replies in free text, so the first {...} block is extracted
// opportunistically; any failure falls back to heuristic categories.
func (g *GeminiService) ClassifyFoodItems(items []string) map[string]any {
	resp, err := g.call(config.PromptClassifyFood + strings.Join(items, ", "))
	if err == nil {
		if raw, ok := extractJSONObject(resp); ok {
			var parsed map[string]any
			if json.Unmarshal([]byte(raw), &parsed) == nil {
				return parsed
			}
		}
		logger.Debug("classification response had no parseable JSON")
	} else {
		logger.Warn("classification call failed", "err", err)
	}

	classified := make([]map[string]any, 0, len(items))
	for _, item := range items {
		classified = append(classified, map[string]any{
			"name":        item,
			"category":    guessCategory(item),
			"ingredients": []string{item},
		})
	}
	return map[string]any{"items": classified}
}

// extractJSONObject returns the substring from the first '{' to the last
// '}' of s, if both exist in order.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func guessCategory(item string) string {
	lower := strings.ToLower(item)
	switch {
	case containsAny(lower, "tea", "coffee", "juice", "milk", "shake"):
		return "Beverages"
	case containsAny(lower, "paratha", "poha", "upma", "idli", "dosa", "breakfast"):
		return "Breakfast"
	case containsAny(lower, "rice", "roti", "dal", "curry", "sabzi"):
		return "Lunch/Dinner"
	case containsAny(lower, "samosa", "pakora", "biscuit"):
		return "Snacks"
	default:
		return "Main Course"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// AnalyzeDiet asks for a narrative insight over a meal's totals.
func (g *GeminiService) AnalyzeDiet(totals models.MealTotals) (string, error) {
	data, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return "", err
	}
	return g.call(config.PromptAnalyzeDiet + string(data))
}

// SuggestAlternatives proposes healthier swaps for the given items, with a
// canned suggestion when the model is unreachable.
func (g *GeminiService) SuggestAlternatives(items []string) string {
	prompt := fmt.Sprintf("As a nutritionist, suggest 3 healthier alternatives for these mess food items: %s.\nKeep it brief and practical for college students. Format as a simple numbered list.",
		strings.Join(items, ", "))
	resp, err := g.call(prompt)
	if err != nil {
		logger.Warn("alternatives call failed", "err", err)
		return "Try adding more vegetables, choosing brown rice over white rice, and including protein in every meal."
	}
	return resp
}

// ChatResponse answers a user message in the nutritionist persona, with
// today's meal data as optional context. Never fails; connection trouble
// degrades to an apology string.
func (g *GeminiService) ChatResponse(message string, context any) string {
	prompt := config.PromptChatResponse + message
	if context != nil {
		if data, err := json.Marshal(context); err == nil {
			prompt += "\n\nContext (today's meal data): " + string(data)
		}
	}
	resp, err := g.call(prompt)
	if err != nil {
		logger.Warn("chat call failed", "err", err)
		return "Sorry, I'm having trouble connecting right now. Please try again!"
	}
	return resp
}
