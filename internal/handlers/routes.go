package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	tagSession  = "Session"
	tagLinks    = "Links"
	tagSettings = "Settings"
)

// Handlers groups every handler served by the API.
type Handlers struct {
	Session   *SessionHandler
	Links     *LinkHandler
	Settings  *SettingsHandler
	Analytics *AnalyticsHandler
}

// RegisterRoutes registers the link builder routes.
func RegisterRoutes(api huma.API, h Handlers) {
	registerSessionRoutes(api, h.Session)
	registerLinkRoutes(api, h.Links)
	registerSettingsRoutes(api, h.Settings)

	if h.Analytics != nil {
		huma.Register(api, huma.Operation{
			OperationID: "campaign-stats",
			Method:      http.MethodGet,
			Path:        "/analytics/campaigns",
			Summary:     "Campaign counters",
			Description: "Generated, shortened and deleted link counts per campaign.",
			Tags:        []string{"Analytics"},
		}, h.Analytics.Campaigns)
	}
}

func registerSessionRoutes(api huma.API, h *SessionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Get session",
		Tags:        []string{tagSession},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "set-form",
		Method:      http.MethodPut,
		Path:        "/session/form",
		Summary:     "Replace form",
		Description: "Replaces every form field. Any edit discards the current link.",
		Tags:        []string{tagSession},
	}, h.SetForm)

	huma.Register(api, huma.Operation{
		OperationID: "set-form-field",
		Method:      http.MethodPatch,
		Path:        "/session/form",
		Summary:     "Update form field",
		Tags:        []string{tagSession},
	}, h.SetField)

	huma.Register(api, huma.Operation{
		OperationID: "apply-preset",
		Method:      http.MethodPost,
		Path:        "/session/preset",
		Summary:     "Apply preset",
		Description: "Overwrites source and medium from a named preset.",
		Tags:        []string{tagSession},
	}, h.ApplyPreset)

	huma.Register(api, huma.Operation{
		OperationID:   "generate",
		Method:        http.MethodPost,
		Path:          "/session/generate",
		Summary:       "Generate tracking URL",
		Description:   "Validates the form, composes the tracking URL and records it in history.",
		Tags:          []string{tagSession},
		DefaultStatus: http.StatusCreated,
	}, h.Generate)

	huma.Register(api, huma.Operation{
		OperationID: "shorten-current",
		Method:      http.MethodPost,
		Path:        "/session/shorten",
		Summary:     "Shorten generated link",
		Tags:        []string{tagSession},
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "clear-session",
		Method:      http.MethodDelete,
		Path:        "/session",
		Summary:     "Clear form",
		Tags:        []string{tagSession},
	}, h.Clear)

	huma.Register(api, huma.Operation{
		OperationID: "mark-copied",
		Method:      http.MethodPost,
		Path:        "/session/copy",
		Summary:     "Confirm copy",
		Tags:        []string{tagSession},
	}, h.MarkCopied)

	huma.Register(api, huma.Operation{
		OperationID: "list-presets",
		Method:      http.MethodGet,
		Path:        "/presets",
		Summary:     "List presets",
		Tags:        []string{tagSession},
	}, h.ListPresets)
}

func registerLinkRoutes(api huma.API, h *LinkHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-links",
		Method:      http.MethodGet,
		Path:        "/links",
		Summary:     "List history",
		Tags:        []string{tagLinks},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "export-links",
		Method:      http.MethodGet,
		Path:        "/links/export",
		Summary:     "Export history as CSV",
		Tags:        []string{tagLinks},
	}, h.Export)

	huma.Register(api, huma.Operation{
		OperationID: "shorten-link",
		Method:      http.MethodPost,
		Path:        "/links/{id}/shorten",
		Summary:     "Shorten history record",
		Tags:        []string{tagLinks},
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-link",
		Method:        http.MethodDelete,
		Path:          "/links/{id}",
		Summary:       "Delete history record",
		Tags:          []string{tagLinks},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)
}

func registerSettingsRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get provider settings",
		Tags:        []string{tagSettings},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "edit-settings-draft",
		Method:      http.MethodPut,
		Path:        "/settings/draft",
		Summary:     "Edit settings draft",
		Tags:        []string{tagSettings},
	}, h.EditDraft)

	huma.Register(api, huma.Operation{
		OperationID: "discard-settings-draft",
		Method:      http.MethodDelete,
		Path:        "/settings/draft",
		Summary:     "Discard settings draft",
		Tags:        []string{tagSettings},
	}, h.DiscardDraft)

	huma.Register(api, huma.Operation{
		OperationID: "save-settings",
		Method:      http.MethodPost,
		Path:        "/settings/save",
		Summary:     "Save settings",
		Description: "Persists the draft and makes it the active configuration.",
		Tags:        []string{tagSettings},
	}, h.Save)

	huma.Register(api, huma.Operation{
		OperationID: "test-credential",
		Method:      http.MethodPost,
		Path:        "/settings/test",
		Summary:     "Test API key",
		Tags:        []string{tagSettings},
	}, h.TestCredential)
}
