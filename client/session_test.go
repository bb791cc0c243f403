package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TokenStore for tests.
type memStore struct {
	token string
}

func (m *memStore) Load() (string, error)   { return m.token, nil }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func authServer(t *testing.T, user User) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/local/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"user": user, "jwt": "tok-123"})
	})
	mux.HandleFunc("/api/auth/local", func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		if input.Password != "good-pass" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid identifier or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"user": user, "jwt": "tok-123"})
	})
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("/api/food-logs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []FoodEntry{{ID: 1, Name: "Toast", Calories: 200, MealType: "breakfast"}}})
	})
	mux.HandleFunc("/api/activity-logs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []ActivityEntry{}})
	})
	return httptest.NewServer(mux)
}

func TestSignUpEstablishesSession(t *testing.T) {
	srv := authServer(t, User{ID: 1, Username: "jane", Email: "jane@example.com"})
	defer srv.Close()

	store := &memStore{}
	c := New(srv.URL, store)

	user, err := c.SignUp("jane", "jane@example.com", "good-pass")
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, "tok-123", store.token)

	// fresh profile: onboarding incomplete
	assert.False(t, c.OnboardingCompleted)

	// the new token rides along on subsequent calls
	require.NoError(t, c.LoadFoodEntries())
	require.Len(t, c.FoodEntries, 1)
}

func TestLogInDerivesOnboardingFlag(t *testing.T) {
	srv := authServer(t, User{
		ID: 1, Username: "jane", Email: "jane@example.com",
		Age: 30, Weight: 62.5, Goal: "maintain", DailyCalorieIntake: 2200,
	})
	defer srv.Close()

	c := New(srv.URL, &memStore{})
	_, err := c.LogIn("jane@example.com", "good-pass")
	require.NoError(t, err)
	assert.True(t, c.OnboardingCompleted)
}

func TestLogInPartialProfileIsNotOnboarded(t *testing.T) {
	// weight missing: flag must stay false
	srv := authServer(t, User{ID: 1, Username: "jane", Age: 30, Goal: "maintain"})
	defer srv.Close()

	c := New(srv.URL, &memStore{})
	_, err := c.LogIn("jane@example.com", "good-pass")
	require.NoError(t, err)
	assert.False(t, c.OnboardingCompleted)
}

func TestLogInFailureLeavesSessionUntouched(t *testing.T) {
	srv := authServer(t, User{ID: 1, Username: "jane"})
	defer srv.Close()

	store := &memStore{}
	c := New(srv.URL, store)
	_, err := c.LogIn("jane@example.com", "bad-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid identifier or password")
	assert.Nil(t, c.User)
	assert.Empty(t, store.token)
}

func TestFetchCurrentUserMarksProfileLoadedEvenOnFailure(t *testing.T) {
	srv := authServer(t, User{ID: 1, Username: "jane"})
	defer srv.Close()

	c := New(srv.URL, &memStore{})
	_, err := c.FetchCurrentUser("stale-token")
	require.Error(t, err)
	assert.True(t, c.ProfileLoaded)
	assert.Nil(t, c.User)
}

func TestLogOutClearsEverything(t *testing.T) {
	srv := authServer(t, User{
		ID: 1, Username: "jane", Age: 30, Weight: 60, Goal: "cut",
	})
	defer srv.Close()

	store := &memStore{}
	c := New(srv.URL, store)
	_, err := c.LogIn("jane@example.com", "good-pass")
	require.NoError(t, err)
	require.NoError(t, c.LoadFoodEntries())
	require.True(t, c.OnboardingCompleted)

	c.LogOut()

	assert.Nil(t, c.User)
	assert.False(t, c.OnboardingCompleted)
	assert.Empty(t, store.token)
	assert.Empty(t, c.FoodEntries)

	// and no credentials on later calls
	err = c.LoadFoodEntries()
	require.Error(t, err)
}

func TestRestoreHydratesFromPersistedToken(t *testing.T) {
	srv := authServer(t, User{ID: 1, Username: "jane", Age: 30, Weight: 60, Goal: "cut"})
	defer srv.Close()

	c := New(srv.URL, &memStore{token: "tok-123"})
	require.NoError(t, c.Restore())

	assert.True(t, c.ProfileLoaded)
	require.NotNil(t, c.User)
	assert.Equal(t, "jane", c.User.Username)
	assert.Len(t, c.FoodEntries, 1)
}

func TestRestoreLoadsLogsWhenUserFetchFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "temporarily unavailable"})
	})
	mux.HandleFunc("/api/food-logs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []FoodEntry{{ID: 1, Name: "Toast", Calories: 200, MealType: "breakfast"}}})
	})
	mux.HandleFunc("/api/activity-logs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []ActivityEntry{{ID: 1, Name: "Run", Duration: 30, Calories: 250}}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, &memStore{token: "tok-123"})
	err := c.Restore()

	// the profile step reports its own failure without starving the rest
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temporarily unavailable")
	assert.True(t, c.ProfileLoaded)
	assert.Nil(t, c.User)
	require.Len(t, c.FoodEntries, 1)
	assert.Equal(t, "Toast", c.FoodEntries[0].Name)
	require.Len(t, c.ActivityEntries, 1)
	assert.Equal(t, "Run", c.ActivityEntries[0].Name)
}

func TestRestoreWithoutTokenIsReady(t *testing.T) {
	c := New("http://127.0.0.1:0", &memStore{})
	require.NoError(t, c.Restore())
	assert.True(t, c.ProfileLoaded)
	assert.Nil(t, c.User)
}
