package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{APIKey: "test-key", BaseURL: url, Model: "test-model"}
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"content":` + content + `},"finish_reason":"stop"}]}`
}

func TestCompleteJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(completionBody(`"{\"overallScore\": 72}"`)))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	content, err := client.CompleteJSON(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 72}`, content)
}

func TestCompleteJSONRetriesOnServerError(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(completionBody(`"{}"`)))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), WithRetry(3, time.Millisecond, 10*time.Millisecond))

	content, err := client.CompleteJSON(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
	assert.Equal(t, 2, calls)
}

func TestCompleteJSONDoesNotRetryBadRequest(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad payload"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), WithRetry(3, time.Millisecond, 10*time.Millisecond))

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsBadRequest(err))
}

func TestCompleteJSONExhaustsRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), WithRetry(3, time.Millisecond, 10*time.Millisecond))

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.False(t, IsBadRequest(err))
}

func TestCompleteJSONRequiresAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost", Model: "m"})

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	assert.Error(t, err)
}

func TestIsBadRequest(t *testing.T) {
	assert.True(t, IsBadRequest(&StatusError{StatusCode: 400}))
	assert.True(t, IsBadRequest(&StatusError{StatusCode: 422}))
	// Les erreurs de débit et de timeout sont transitoires
	assert.False(t, IsBadRequest(&StatusError{StatusCode: 429}))
	assert.False(t, IsBadRequest(&StatusError{StatusCode: 408}))
	assert.False(t, IsBadRequest(&StatusError{StatusCode: 500}))
	assert.False(t, IsBadRequest(context.Canceled))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, parseRetryAfter("3"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("garbage"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-2"))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Score float64 `json:"score"`
	}

	tests := []struct {
		name    string
		content string
		want    float64
		wantErr bool
	}{
		{"plain object", `{"score": 71}`, 71, false},
		{"fenced json", "```json\n{\"score\": 71}\n```", 71, false},
		{"fenced without language", "```\n{\"score\": 71}\n```", 71, false},
		{"prose around object", `Here is the analysis: {"score": 71}. Hope it helps!`, 71, false},
		{"braces inside strings", `{"score": 71, "note": "use {firm} grip"}`, 71, false},
		{"empty", "", 0, true},
		{"no object", "the swing scores about seventy", 0, true},
		{"truncated object", `{"score": 71`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeJSON(tt.content, &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Score)
		})
	}
}
