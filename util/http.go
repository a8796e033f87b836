package util

import (
	"net/http"
	"time"
)

var (
	lookupSession = &http.Client{
		Timeout: 15 * time.Second,
	}
	fetchSession = &http.Client{
		Timeout: 30 * time.Second,
	}
)

// GetLookupSession returns the shared client for backend API calls.
func GetLookupSession() *http.Client {
	return lookupSession
}

// GetFetchSession returns the shared client for media byte transfers.
func GetFetchSession() *http.Client {
	return fetchSession
}
