package session_test

import (
	"context"
	"sync"

	"github.com/serroba/campaign-links/internal/shortlink"
)

type mockShortener struct {
	mu          sync.Mutex
	createCalls []shortlink.CreateRequest
	testCalls   []string

	link      *shortlink.Link
	createErr error
	account   string
	testErr   error
	release   chan struct{}
	panicWith any
}

func newMockShortener() *mockShortener {
	return &mockShortener{
		link:    &shortlink.Link{ShortURL: "https://rebrand.ly/spring", ProviderID: "prov-1"},
		account: "Connected as team@example.com",
	}
}

func (m *mockShortener) CreateShortLink(_ context.Context, req shortlink.CreateRequest) (*shortlink.Link, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, req)
	release := m.release
	m.mu.Unlock()

	if release != nil {
		<-release
	}

	if m.panicWith != nil {
		panic(m.panicWith)
	}

	if m.createErr != nil {
		return nil, m.createErr
	}

	link := *m.link

	return &link, nil
}

func (m *mockShortener) TestCredential(_ context.Context, apiKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.testCalls = append(m.testCalls, apiKey)

	if m.testErr != nil {
		return "", m.testErr
	}

	return m.account, nil
}

func (m *mockShortener) creates() []shortlink.CreateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]shortlink.CreateRequest(nil), m.createCalls...)
}
