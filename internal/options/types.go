package options

// OptionsRequest is the form host's dynamic-options query for one table
// field. token carries the shared secret; the other three identify what
// to read.
type OptionsRequest struct {
	AppToken  string `json:"app_token"`
	TableID   string `json:"table_id"`
	FieldName string `json:"field_name"`
	Token     string `json:"token"`
}

// Option is one selectable choice offered back to the form host.
type Option struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// I18nResource carries localized option labels. The service never fills
// it; the field stays an empty list in every response.
type I18nResource struct {
	Locale    string            `json:"locale"`
	Texts     map[string]string `json:"texts"`
	IsDefault bool              `json:"isDefault"`
}

// Result is the payload under data.result on success. hasMore and
// nextPageToken are inert: only one page is ever fetched.
type Result struct {
	Options       []Option       `json:"options"`
	I18nResources []I18nResource `json:"i18nResources"`
	HasMore       bool           `json:"hasMore"`
	NextPageToken string         `json:"nextPageToken"`
}

// newResult allocates a Result whose collections marshal as [] rather
// than null.
func newResult(capacity int) *Result {
	return &Result{
		Options:       make([]Option, 0, capacity),
		I18nResources: []I18nResource{},
	}
}
