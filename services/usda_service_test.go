package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchFoodParsesNutrients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pageSize"); got != "1" {
			t.Errorf("pageSize = %q, want 1", got)
		}
		fmt.Fprint(w, `{"foods":[{"description":"Lentils, cooked","foodNutrients":[
			{"nutrientName":"Energy","value":116},
			{"nutrientName":"Protein","value":9.0},
			{"nutrientName":"Carbohydrate, by difference","value":20.1},
			{"nutrientName":"Total lipid (fat)","value":0.4},
			{"nutrientName":"Fiber, total dietary","value":7.9},
			{"nutrientName":"Sodium, Na","value":238}]}]}`)
	}))
	defer srv.Close()

	got, err := newTestUSDA(srv).SearchFood("lentils")
	if err != nil {
		t.Fatalf("SearchFood: %v", err)
	}
	if got == nil {
		t.Fatal("SearchFood returned nil match")
	}
	if got.Name != "lentils" {
		t.Errorf("Name = %q, want original query", got.Name)
	}
	if !approx(got.Calories, 116) || !approx(got.Protein, 9.0) ||
		!approx(got.Carbs, 20.1) || !approx(got.Fat, 0.4) || !approx(got.Fiber, 7.9) {
		t.Errorf("macros = %+v", got)
	}
	if got.IsEstimate {
		t.Error("looked-up record should not carry the estimate flag")
	}
}

func TestSearchFoodMissingNutrientsDefaultToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"foods":[{"description":"Mystery","foodNutrients":[
			{"nutrientName":"Caloric Value","value":95}]}]}`)
	}))
	defer srv.Close()

	got, err := newTestUSDA(srv).SearchFood("mystery")
	if err != nil {
		t.Fatalf("SearchFood: %v", err)
	}
	// "Caloric Value" matches the "calor" label; everything else defaults
	if !approx(got.Calories, 95) {
		t.Errorf("Calories = %v, want 95", got.Calories)
	}
	if got.Protein != 0 || got.Carbs != 0 || got.Fat != 0 || got.Fiber != 0 {
		t.Errorf("unmatched nutrients should be zero: %+v", got)
	}
}

func TestSearchFoodNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"foods":[]}`)
	}))
	defer srv.Close()

	got, err := newTestUSDA(srv).SearchFood("nothing")
	if err != nil {
		t.Fatalf("SearchFood: %v", err)
	}
	if got != nil {
		t.Errorf("want nil for empty result set, got %+v", got)
	}
}

func TestSearchFoodAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestUSDA(srv).SearchFood("rice"); err == nil {
		t.Error("want error on non-200 response")
	}
}
