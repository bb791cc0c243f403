package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const visionPrompt = `
Analyze this food image.

Return ONLY valid JSON in this exact format:

{
  "name": "food name",
  "calories": number
}

Do not include explanation.
Do not include markdown.
Return raw JSON only.
`

type VisionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewVisionService initializes the VisionService with credentials and HTTP client
func NewVisionService() *VisionService {
	return &VisionService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FoodGuess is the structured record extracted from the model's reply.
type FoodGuess struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// ExtractionError reports that the model responded but its text was not
// parseable JSON. Distinct from a transport failure so callers cannot
// mistake one for the other.
type ExtractionError struct {
	RawText string
}

func (e *ExtractionError) Error() string {
	return "AI failed to return structured data"
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inlineData,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeFoodImage sends one generateContent request with the image payload
// and the fixed extraction prompt. Single pass, no retries.
func (s *VisionService) AnalyzeFoodImage(mimeType, base64Image string) (*FoodGuess, error) {
	req := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64Image}},
				{Text: visionPrompt},
			},
		}},
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	u := fmt.Sprintf(
		"%s/v1/models/gemini-2.5-flash:generateContent?key=%s",
		s.baseURL, s.apiKey,
	)

	resp, err := s.client.Post(u, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, &ExtractionError{RawText: ""}
	}
	text := gr.Candidates[0].Content.Parts[0].Text

	var guess FoodGuess
	if err := json.Unmarshal([]byte(text), &guess); err != nil {
		log.Printf("invalid JSON from Gemini: %s", text)
		return nil, &ExtractionError{RawText: text}
	}

	return &guess, nil
}
