package tracking

// Field names a tracking form field.
type Field string

const (
	FieldURL      Field = "url"
	FieldSource   Field = "source"
	FieldMedium   Field = "medium"
	FieldCampaign Field = "campaign"
	FieldTerm     Field = "term"
	FieldContent  Field = "content"
)

// Query parameter keys written by Compose.
const (
	ParamSource   = "utm_source"
	ParamMedium   = "utm_medium"
	ParamCampaign = "utm_campaign"
	ParamTerm     = "utm_term"
	ParamContent  = "utm_content"
)

// Params holds the base URL and campaign attribution fields.
type Params struct {
	URL      string `doc:"Destination URL"   example:"https://example.com" json:"url"`
	Source   string `doc:"Campaign source"   example:"newsletter"          json:"source"`
	Medium   string `doc:"Campaign medium"   example:"email"               json:"medium"`
	Campaign string `doc:"Campaign name"     example:"spring_sale"         json:"campaign"`
	Term     string `doc:"Paid search terms" example:"running+shoes"       json:"term,omitempty"`
	Content  string `doc:"Content variant"   example:"logolink"            json:"content,omitempty"`
}

// Get returns the value of a single field.
func (p Params) Get(field Field) string {
	switch field {
	case FieldURL:
		return p.URL
	case FieldSource:
		return p.Source
	case FieldMedium:
		return p.Medium
	case FieldCampaign:
		return p.Campaign
	case FieldTerm:
		return p.Term
	case FieldContent:
		return p.Content
	}

	return ""
}

// With returns a copy of p with one field replaced.
// Unknown fields leave p unchanged and report false.
func (p Params) With(field Field, value string) (Params, bool) {
	switch field {
	case FieldURL:
		p.URL = value
	case FieldSource:
		p.Source = value
	case FieldMedium:
		p.Medium = value
	case FieldCampaign:
		p.Campaign = value
	case FieldTerm:
		p.Term = value
	case FieldContent:
		p.Content = value
	default:
		return p, false
	}

	return p, true
}
