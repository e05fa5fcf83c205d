package main

import (
	"errors"
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/e2etest"
	"github.com/ParkChanH/project-anchovy/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "ANCHOVY_ADDR":
		return "localhost:0", true
	case "ANCHOVY_SQLITE_URL":
		return ":memory:", true
	default:
		return "", false
	}
}

// startTestServer boots the full application on a random port with an
// in-memory database and returns a cookie-carrying client for one user.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

// assertStatusError fails the test unless err is a StatusError with the
// wanted status code.
func assertStatusError(t *testing.T, err error, statusCode int) {
	t.Helper()
	var statusErr *e2etest.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want a status error", err)
	}
	if statusErr.StatusCode != statusCode {
		t.Errorf("status code = %d, want %d", statusErr.StatusCode, statusCode)
	}
}
