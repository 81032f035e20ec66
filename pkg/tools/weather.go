package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// DefaultWeatherBaseURL is the wttr.in endpoint serving JSON conditions.
const DefaultWeatherBaseURL = "https://wttr.in"

// WeatherTool fetches current conditions for a city from wttr.in.
type WeatherTool struct {
	BaseURL string
	Client  *http.Client
}

func NewWeatherTool() *WeatherTool {
	return &WeatherTool{
		BaseURL: DefaultWeatherBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WeatherTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "get_weather",
		Description: "Get current weather for a city. Input is the city name, e.g. 'Lagos'.",
	}
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

func (w *WeatherTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	city := strings.TrimSpace(req.Input)
	if city == "" {
		return agent.ToolResponse{}, fmt.Errorf("city name is empty")
	}

	endpoint := fmt.Sprintf("%s/%s?format=j1", strings.TrimRight(w.BaseURL, "/"), url.PathEscape(city))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return agent.ToolResponse{}, err
	}

	resp, err := w.Client.Do(httpReq)
	if err != nil {
		return agent.ToolResponse{}, fmt.Errorf("weather lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return agent.ToolResponse{Content: fmt.Sprintf("Could not get weather for %s", city)}, nil
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("weather response: %w", err)
	}
	if len(payload.CurrentCondition) == 0 || len(payload.CurrentCondition[0].WeatherDesc) == 0 {
		return agent.ToolResponse{Content: fmt.Sprintf("Could not get weather for %s", city)}, nil
	}

	current := payload.CurrentCondition[0]
	desc := strings.ToLower(current.WeatherDesc[0].Value)
	return agent.ToolResponse{
		Content: fmt.Sprintf("The weather in %s is a %s with a temperature of %s°C.", city, desc, current.TempC),
	}, nil
}

var _ agent.Tool = (*WeatherTool)(nil)
