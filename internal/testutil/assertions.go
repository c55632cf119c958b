package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var errResp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp), "error body is not JSON: %s", string(body))
	assert.Contains(t, errResp.Message, expectedMessage, "error message mismatch")
}

// ActionBody mirrors the pet action response.
type ActionBody struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Pet     struct {
		ID           int64    `json:"id"`
		Happiness    int      `json:"happiness"`
		Life         int      `json:"life"`
		Illnesses    []string `json:"illnesses"`
		CauseOfDeath *string  `json:"causeOfDeath"`
		CustomItems  []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"customItems"`
	} `json:"pet"`
}

// AssertAction checks a 200 action response and returns its body.
func AssertAction(t *testing.T, resp *http.Response, applied bool, reason string) ActionBody {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.StatusCode, "unexpected status code")
	var body ActionBody
	AssertJSONResponse(t, resp, &body)
	assert.Equal(t, applied, body.Applied, "applied mismatch: %s", body.Message)
	assert.Equal(t, reason, body.Reason, "reason mismatch: %s", body.Message)
	return body
}
