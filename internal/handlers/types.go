package handlers

import (
	"github.com/serroba/campaign-links/internal/analytics/store"
	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/tracking"
)

// SessionResponse is the current session view.
type SessionResponse struct {
	Body session.View
}

// SetFormRequest replaces the whole form.
type SetFormRequest struct {
	Body tracking.Params
}

// SetFieldRequest updates a single form field.
type SetFieldRequest struct {
	Body struct {
		Field tracking.Field `doc:"Form field to change" enum:"url,source,medium,campaign,term,content" example:"campaign" json:"field"`
		Value string         `doc:"New value"            example:"spring_sale"                            json:"value"`
	}
}

// ApplyPresetRequest selects a preset by name.
type ApplyPresetRequest struct {
	Body struct {
		Name string `doc:"Preset name" example:"newsletter" json:"name"`
	}
}

// LinkResponse wraps a single history record.
type LinkResponse struct {
	Body history.Link
}

// LinkIDRequest addresses a history record.
type LinkIDRequest struct {
	ID string `doc:"History record id" path:"id"`
}

// LinksResponse lists history, newest first.
type LinksResponse struct {
	Body struct {
		Links []history.Link `json:"links"`
		Limit int            `doc:"Maximum records kept" json:"limit"`
	}
}

// ExportResponse is the CSV download.
type ExportResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// PresetsResponse lists the built-in presets.
type PresetsResponse struct {
	Body struct {
		Presets []tracking.Preset `json:"presets"`
	}
}

// SettingsResponse shows the active and draft provider configuration with masked keys.
type SettingsResponse struct {
	Body struct {
		Active settings.ProviderConfig `json:"active"`
		Draft  settings.ProviderConfig `json:"draft"`
	}
}

// EditSettingsRequest replaces the settings draft.
type EditSettingsRequest struct {
	Body settings.ProviderConfig
}

// TestCredentialRequest checks an API key. An empty key tests the draft.
type TestCredentialRequest struct {
	Body struct {
		APIKey string `doc:"API key to test; defaults to the draft key" json:"apiKey,omitempty"`
	} `required:"false"`
}

// TestCredentialResponse carries the provider's account description.
type TestCredentialResponse struct {
	Body struct {
		Message string `example:"Connected as team@example.com" json:"message"`
	}
}

// CampaignStatsResponse lists aggregated link events per campaign.
type CampaignStatsResponse struct {
	Body struct {
		Campaigns []store.CampaignStats `json:"campaigns"`
	}
}
