package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Sports-day/sports-day-demo/config"
	"github.com/itbasis/go-clock"
)

// TestBackend is a fake sports-day API behind a fake OAuth token endpoint, the
// setup the live repository strategy runs against.
type TestBackend struct {
	Clock     *clock.Mock
	SportsDay *FakeSportsDayServer
	fakeOAuth *httptest.Server
}

func (b *TestBackend) Close() {
	b.SportsDay.Close()
	b.fakeOAuth.Close()
}

// Config returns a live configuration that authenticates with client credentials.
func (b *TestBackend) Config() *config.Config {
	return &config.Config{
		Port:                  3000,
		Repository:            config.REPOSITORY_LIVE,
		SportsDayURL:          b.SportsDay.URL(),
		SportsDayClientID:     "fakeClientID",
		SportsDayClientSecret: "fakeClientSecret",
		SportsDayTokenURL:     fmt.Sprintf("%s/token", b.fakeOAuth.URL),
		FetchConcurrency:      4,
		RequestTimeout:        5 * time.Second,
	}
}

func NewTestBackend() *TestBackend {
	fakeOAuthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"access_token": "access_token",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	}))

	return &TestBackend{
		Clock:     clock.NewMock(),
		SportsDay: NewFakeSportsDayServer(),
		fakeOAuth: fakeOAuthServer,
	}
}
