package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// FoodGuess is the structured record relayed back by the image-analysis
// endpoint.
type FoodGuess struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// AnalyzeImage uploads a photographed meal and returns the server's
// extracted record. No retry; an in-flight analysis cannot be aborted.
func (c *Client) AnalyzeImage(filename string, image io.Reader) (*FoodGuess, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/image-analysis", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out struct {
		Result *FoodGuess `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Result == nil {
		return nil, fmt.Errorf("empty analysis result")
	}
	return out.Result, nil
}

// LogAnalyzedFood turns an analysis result into a food entry, deriving the
// meal type from the hour of day. A guess missing its name or calories is
// rejected locally, never submitted.
func (c *Client) LogAnalyzedFood(guess *FoodGuess, now time.Time) (*FoodEntry, error) {
	if guess == nil || guess.Name == "" || guess.Calories <= 0 {
		return nil, ErrInvalidEntry
	}
	return c.AddFoodEntry(guess.Name, int(guess.Calories), MealTypeForHour(now.Hour()))
}

// SnapAndLog is the full image-to-entry round trip: analyze, then log.
func (c *Client) SnapAndLog(filename string, image io.Reader) (*FoodEntry, error) {
	guess, err := c.AnalyzeImage(filename, image)
	if err != nil {
		return nil, err
	}
	return c.LogAnalyzedFood(guess, time.Now())
}
