package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidEntry is returned when a draft fails local validation. No
// network call is made in that case.
var ErrInvalidEntry = errors.New("please enter valid data")

func validMealType(mealType string) bool {
	switch mealType {
	case "breakfast", "lunch", "dinner", "snack":
		return true
	}
	return false
}

// LoadFoodEntries bulk-fetches every food entry for the session owner and
// replaces the cached collection.
func (c *Client) LoadFoodEntries() error {
	resp, err := c.do(http.MethodGet, "/api/food-logs", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	entries, err := decodeCollection[FoodEntry](body)
	if err != nil {
		return err
	}
	c.FoodEntries = entries
	return nil
}

// LoadActivityEntries mirrors LoadFoodEntries for activity logs.
func (c *Client) LoadActivityEntries() error {
	resp, err := c.do(http.MethodGet, "/api/activity-logs", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	entries, err := decodeCollection[ActivityEntry](body)
	if err != nil {
		return err
	}
	c.ActivityEntries = entries
	return nil
}

// AddFoodEntry validates the draft locally, submits it, and appends the
// server-assigned entry to the end of the cache. The collection is not
// re-fetched.
func (c *Client) AddFoodEntry(name string, calories int, mealType string) (*FoodEntry, error) {
	if name == "" || calories <= 0 || !validMealType(mealType) {
		return nil, ErrInvalidEntry
	}

	resp, err := c.do(http.MethodPost, "/api/food-logs", map[string]any{
		"data": map[string]any{
			"name":     name,
			"calories": calories,
			"mealType": mealType,
		},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var entry FoodEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, err
	}

	c.FoodEntries = append(c.FoodEntries, entry)
	return &entry, nil
}

// DeleteFoodEntry asks confirm before proceeding. The cached entry is
// removed only after the server delete succeeds; order of the remainder is
// preserved.
func (c *Client) DeleteFoodEntry(id uint, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	resp, err := c.do(http.MethodDelete, fmt.Sprintf("/api/food-logs/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	kept := c.FoodEntries[:0]
	for _, e := range c.FoodEntries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.FoodEntries = kept
	return nil
}

// AddActivityEntry is the activity counterpart of AddFoodEntry.
func (c *Client) AddActivityEntry(name string, duration, calories int) (*ActivityEntry, error) {
	if name == "" || duration <= 0 || calories < 0 {
		return nil, ErrInvalidEntry
	}

	resp, err := c.do(http.MethodPost, "/api/activity-logs", map[string]any{
		"data": map[string]any{
			"name":     name,
			"duration": duration,
			"calories": calories,
		},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var entry ActivityEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, err
	}

	c.ActivityEntries = append(c.ActivityEntries, entry)
	return &entry, nil
}

// DeleteActivityEntry mirrors DeleteFoodEntry.
func (c *Client) DeleteActivityEntry(id uint, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	resp, err := c.do(http.MethodDelete, fmt.Sprintf("/api/activity-logs/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	kept := c.ActivityEntries[:0]
	for _, e := range c.ActivityEntries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.ActivityEntries = kept
	return nil
}
