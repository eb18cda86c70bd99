package currencyapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"MYR":4.43,"SGD":1.35}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	rate, amountMYR, err := client.FetchRate(context.Background(), decimal.NewFromInt(100), "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("4.43")), "rate was %s", rate)
	assert.True(t, amountMYR.Equal(decimal.RequireFromString("443")), "amountMYR was %s", amountMYR)
}

func TestFetchRate_MissingBaseCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"SGD":1.35}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, _, err := client.FetchRate(context.Background(), decimal.NewFromInt(100), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing MYR rate")
}

func TestFetchRate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, _, err := client.FetchRate(context.Background(), decimal.NewFromInt(100), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchRate_UnconfiguredBaseURL(t *testing.T) {
	client := NewClient("", "")
	_, _, err := client.FetchRate(context.Background(), decimal.NewFromInt(100), "USD")
	require.Error(t, err)
}

func TestFetchRate_NonPositiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"MYR":0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, _, err := client.FetchRate(context.Background(), decimal.NewFromInt(100), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive rate")
}
