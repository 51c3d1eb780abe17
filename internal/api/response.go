// Package api defines the response envelope consumed by the form host.
package api

// Messages surfaced to the host verbatim. The host renders msg to end
// users, so these strings are part of the wire contract.
const (
	MsgSuccess          = "success"
	MsgInvalidToken     = "Invalid token."
	MsgMissingParams    = "Missing required parameters: app_token, table_id, or field_name."
	MsgMethodNotAllowed = "Method not allowed."
	MsgInternalError    = "Internal server error. Check worker logs."
)

// Envelope is the fixed response shape for every JSON reply: code 0 with a
// result payload on success, code 1 with an empty data object on failure.
type Envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

type resultData struct {
	Result any `json:"result"`
}

// Success wraps a result payload in a code-0 envelope.
func Success(result any) Envelope {
	return Envelope{Code: 0, Msg: MsgSuccess, Data: resultData{Result: result}}
}

// Error builds a code-1 envelope with an empty data object.
func Error(msg string) Envelope {
	return Envelope{Code: 1, Msg: msg, Data: struct{}{}}
}
