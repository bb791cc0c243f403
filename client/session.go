package client

import (
	"encoding/json"
	"errors"
	"net/http"
)

type authResponse struct {
	User User   `json:"user"`
	JWT  string `json:"jwt"`
}

// SignUp registers a new identity and establishes it as the active session.
// On failure any prior session state is left untouched.
func (c *Client) SignUp(username, email, password string) (*User, error) {
	resp, err := c.do(http.MethodPost, "/api/auth/local/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	c.setSession(out.User, out.JWT)
	return c.User, nil
}

// LogIn authenticates an existing identity. Same contract as SignUp.
func (c *Client) LogIn(email, password string) (*User, error) {
	resp, err := c.do(http.MethodPost, "/api/auth/local", map[string]string{
		"identifier": email,
		"password":   password,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	c.setSession(out.User, out.JWT)
	return c.User, nil
}

// FetchCurrentUser resolves the profile behind a token and installs it as
// the active session. ProfileLoaded flips true exactly once, when this
// call completes, success or failure.
func (c *Client) FetchCurrentUser(token string) (*User, error) {
	defer func() { c.ProfileLoaded = true }()

	prev := c.token
	c.token = token
	resp, err := c.do(http.MethodGet, "/api/users/me", nil)
	if err != nil {
		c.token = prev
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.token = prev
		return nil, apiError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		c.token = prev
		return nil, err
	}

	c.setSession(user, token)
	return c.User, nil
}

// CompleteOnboarding updates the profile fields that personalize targets
// and refreshes the session copy of the user.
func (c *Client) CompleteOnboarding(age int, weight float64, goal string, dailyCalorieIntake int) (*User, error) {
	resp, err := c.do(http.MethodPut, "/api/users/me", map[string]any{
		"age":                age,
		"weight":             weight,
		"goal":               goal,
		"dailyCalorieIntake": dailyCalorieIntake,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	c.User = &user
	c.OnboardingCompleted = onboardingComplete(&user)
	return c.User, nil
}

// LogOut clears the persisted token, the in-memory session and the
// onboarding flag. Subsequent requests carry no credentials.
func (c *Client) LogOut() {
	if c.tokens != nil {
		c.tokens.Clear()
	}
	c.token = ""
	c.User = nil
	c.OnboardingCompleted = false
	c.FoodEntries = nil
	c.ActivityEntries = nil
}

// Restore re-hydrates the session from a persisted token: user first, then
// both log collections, strictly in that order. Each step reports its own
// error without stopping the later ones.
func (c *Client) Restore() error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Load()
	if err != nil || token == "" {
		c.ProfileLoaded = true
		return err
	}

	_, userErr := c.FetchCurrentUser(token)
	// A failed profile fetch must not strip credentials from the log
	// loads; they carry the persisted token regardless.
	c.token = token
	foodErr := c.LoadFoodEntries()
	activityErr := c.LoadActivityEntries()
	return errors.Join(userErr, foodErr, activityErr)
}

func (c *Client) setSession(user User, jwt string) {
	c.User = &user
	c.token = jwt
	c.OnboardingCompleted = onboardingComplete(&user)
	if c.tokens != nil {
		c.tokens.Save(jwt)
	}
}

// Onboarding counts as complete when age, weight and goal are all present.
func onboardingComplete(u *User) bool {
	return u != nil && u.Age > 0 && u.Weight > 0 && u.Goal != ""
}
