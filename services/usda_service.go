package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"backend/models"
)

// USDAService talks to the USDA FoodData Central search API.
type USDAService struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewUSDAService() *USDAService {
	key := os.Getenv("USDA_API_KEY")
	if key == "" {
		key = "DEMO_KEY"
	}
	base := os.Getenv("USDA_API_URL")
	if base == "" {
		base = "https://api.nal.usda.gov/fdc/v1"
	}
	return &USDAService{
		apiKey: key,
		apiURL: base,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type foodSearchResponse struct {
	Foods []struct {
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// SearchFood queries the search endpoint for the single best candidate and
// maps its nutrient list onto the five tracked macros. Returns (nil, nil)
// when the service has no match.
func (s *USDAService) SearchFood(query string) (*models.FoodNutrition, error) {
	u := fmt.Sprintf("%s/foods/search?api_key=%s&query=%s&pageSize=1",
		s.apiURL, s.apiKey, url.QueryEscape(query))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}
	if len(sr.Foods) == 0 {
		return nil, nil
	}

	// Nutrient names vary between data sets ("Energy", "Energy (Atwater
	// General Factors)", "Total lipid (fat)", ...), so match by substring,
	// first listed nutrient wins.
	nutrients := sr.Foods[0].FoodNutrients
	pick := func(labels ...string) float64 {
		for _, label := range labels {
			for _, n := range nutrients {
				if strings.Contains(strings.ToLower(n.NutrientName), label) {
					return n.Value
				}
			}
		}
		return 0
	}

	return &models.FoodNutrition{
		Name:     query,
		Calories: pick("energy", "calor"),
		Protein:  pick("protein"),
		Carbs:    pick("carbohydrate"),
		Fat:      pick("total lipid", "fat"),
		Fiber:    pick("fiber"),
		Serving:  "100g",
	}, nil
}
