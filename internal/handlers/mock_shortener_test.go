package handlers_test

import (
	"context"

	"github.com/serroba/campaign-links/internal/shortlink"
)

type mockShortener struct {
	createErr error
	testErr   error
	calls     int
}

func (m *mockShortener) CreateShortLink(_ context.Context, _ shortlink.CreateRequest) (*shortlink.Link, error) {
	m.calls++

	if m.createErr != nil {
		return nil, m.createErr
	}

	return &shortlink.Link{ShortURL: "https://rebrand.ly/abc", ProviderID: "p-1"}, nil
}

func (m *mockShortener) TestCredential(_ context.Context, _ string) (string, error) {
	m.calls++

	if m.testErr != nil {
		return "", m.testErr
	}

	return "Connected as team@example.com", nil
}
