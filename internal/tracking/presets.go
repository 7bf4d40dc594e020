package tracking

// Preset is a named source/medium pair.
type Preset struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Source string `json:"source"`
	Medium string `json:"medium"`
}

// Presets lists the built-in presets in display order.
var Presets = []Preset{
	{Name: "facebook", Label: "Facebook", Source: "facebook", Medium: "social"},
	{Name: "twitter", Label: "Twitter / X", Source: "twitter", Medium: "social"},
	{Name: "linkedin", Label: "LinkedIn", Source: "linkedin", Medium: "social"},
	{Name: "instagram", Label: "Instagram", Source: "instagram", Medium: "social"},
	{Name: "newsletter", Label: "Newsletter", Source: "newsletter", Medium: "email"},
	{Name: "google-ads", Label: "Google Ads", Source: "google", Medium: "cpc"},
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}

	return Preset{}, false
}

// Apply overwrites source and medium only.
func (pr Preset) Apply(p Params) Params {
	p.Source = pr.Source
	p.Medium = pr.Medium

	return p
}
