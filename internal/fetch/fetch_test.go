package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	var gotUserAgent, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept-Language")
		w.Write([]byte("<html><body><h1>hello</h1></body></html>"))
	}))
	defer ts.Close()

	client := NewClient(&Options{BaseURL: ts.URL})
	body, err := client.Fetch(context.Background(), ts.URL+"/some-product/p/itm1")
	require.NoError(t, err)
	assert.Contains(t, body, "<h1>hello</h1>")
	assert.Equal(t, defaultUserAgent, gotUserAgent)
	assert.Equal(t, acceptLanguageHeader, gotAccept)
}

func TestFetchProductNotFoundMarker(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>The page you were looking for has been moved or deleted</body></html>"))
	}))
	defer ts.Close()

	client := NewClient(&Options{BaseURL: ts.URL})
	_, err := client.Fetch(context.Background(), ts.URL+"/gone")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFetchHostBlocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(&Options{BaseURL: ts.URL})
	_, err := client.Fetch(context.Background(), ts.URL+"/anything")
	assert.ErrorIs(t, err, ErrHostBlocked)
}

func TestFetchUnsupportedDomain(t *testing.T) {
	client := NewClient(nil)
	_, err := client.Fetch(context.Background(), "https://example.com/product")
	assert.ErrorIs(t, err, ErrUnsupportedDomain)
}

func TestBuildSearchURL(t *testing.T) {
	client := NewClient(nil)
	assert.Equal(t,
		"https://www.flipkart.com/search?q=galaxy+f13+5g",
		client.BuildSearchURL("galaxy f13 5g"),
	)

	client = NewClient(&Options{BaseURL: "http://localhost:9000/"})
	assert.Equal(t, "http://localhost:9000/search?q=a%26b", client.BuildSearchURL("a&b"))
}
