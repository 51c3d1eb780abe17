package lark

// Credentials identify the upstream application performing the token
// exchange.
type Credentials struct {
	AppID     string
	AppSecret string
}

// Record is one row of an upstream table, carrying only the requested
// fields. Field values keep their decoded JSON forms: json.Number for
// numbers, []any for sequences, map[string]any for objects.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type tokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type tokenResponse struct {
	Code           int    `json:"code"`
	Msg            string `json:"msg"`
	AppAccessToken string `json:"app_access_token"`
}

type recordsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Items []Record `json:"items"`
	} `json:"data"`
}
