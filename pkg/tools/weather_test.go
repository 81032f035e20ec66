package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reagent-labs/reagent/pkg/agent"
)

func newWeatherServer(t *testing.T, handler http.HandlerFunc) *WeatherTool {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &WeatherTool{BaseURL: srv.URL, Client: srv.Client()}
}

func TestWeatherReportsConditions(t *testing.T) {
	tool := newWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Lagos" {
			t.Errorf("path = %q, want /Lagos", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "j1" {
			t.Errorf("format = %q, want j1", r.URL.Query().Get("format"))
		}
		w.Write([]byte(`{"current_condition":[{"temp_C":"28","weatherDesc":[{"value":"Partly Cloudy"}]}]}`))
	})

	resp, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "Lagos"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	want := "The weather in Lagos is a partly cloudy with a temperature of 28°C."
	if resp.Content != want {
		t.Errorf("content = %q, want %q", resp.Content, want)
	}
}

func TestWeatherUnknownCity(t *testing.T) {
	tool := newWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown location", http.StatusNotFound)
	})

	resp, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "Atlantis"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if resp.Content != "Could not get weather for Atlantis" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestWeatherEmptyConditions(t *testing.T) {
	tool := newWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_condition":[]}`))
	})

	resp, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "Lagos"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !strings.HasPrefix(resp.Content, "Could not get weather") {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestWeatherEmptyCity(t *testing.T) {
	tool := NewWeatherTool()
	if _, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "   "}); err == nil {
		t.Fatal("expected an error for an empty city name")
	}
}
