package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type Pet struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Happiness int    `json:"happiness"`
	Life      int    `json:"life"`
}

type ActionResult struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Pet     Pet    `json:"pet"`
}

func (c *APIClient) Register(name, email, password string) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	return c.do(http.MethodPost, "/usuarios/registro", body, "", http.StatusCreated, nil)
}

// Login returns the access token
func (c *APIClient) Login(email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/usuarios/login", body, "", http.StatusOK, &result); err != nil {
		return "", err
	}
	return result.Token, nil
}

func (c *APIClient) AvailablePets(token string) ([]Pet, error) {
	var pets []Pet
	err := c.do(http.MethodGet, "/adopcion/disponibles", nil, token, http.StatusOK, &pets)
	return pets, err
}

func (c *APIClient) Adopt(token string, petID int64) (*Pet, error) {
	var result struct {
		Pet Pet `json:"pet"`
	}
	if err := c.do(http.MethodPost, fmt.Sprintf("/adopcion/adoptar/%d", petID), nil, token, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.Pet, nil
}

// Act runs a body-less pet action such as "alimentar" or "pasear"
func (c *APIClient) Act(token string, petID int64, action string) (*ActionResult, error) {
	var result ActionResult
	if err := c.do(http.MethodPost, fmt.Sprintf("/mascotas/%d/%s", petID, action), nil, token, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *APIClient) do(method, path string, body interface{}, token string, wantStatus int, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s request failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s failed (status %d): %s", method, path, resp.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
