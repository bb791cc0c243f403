// Package client is a Go consumer of the fitness-tracker API. It holds the
// authenticated session, a cached copy of the user's food and activity
// logs, and pure helpers that derive daily and weekly stats from that
// cache.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type User struct {
	ID                 uint    `json:"id"`
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	Age                int     `json:"age"`
	Weight             float64 `json:"weight"`
	Goal               string  `json:"goal"`
	DailyCalorieIntake int     `json:"dailyCalorieIntake"`
}

type FoodEntry struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	MealType  string    `json:"mealType"`
	CreatedAt time.Time `json:"createdAt"`
}

type ActivityEntry struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	token string

	// Session state. Mutated only through the named operations below.
	User                *User
	ProfileLoaded       bool
	OnboardingCompleted bool
	FoodEntries         []FoodEntry
	ActivityEntries     []ActivityEntry
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// do issues a request against the API. The session token, when present, is
// attached to every outbound call.
func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

// apiError builds a best-effort message from an error response: prefer the
// structured server message, fall back to the raw body, then the status.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var withString struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &withString); err == nil && withString.Error != "" {
		return fmt.Errorf("%s", withString.Error)
	}

	var withObject struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &withObject); err == nil && withObject.Error.Message != "" {
		return fmt.Errorf("%s", withObject.Error.Message)
	}

	if len(bytes.TrimSpace(body)) > 0 {
		return fmt.Errorf("%s", bytes.TrimSpace(body))
	}
	return fmt.Errorf("request failed: %s", resp.Status)
}
