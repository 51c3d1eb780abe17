package lark

import "fmt"

// AuthError reports a failed app access token exchange: a non-success
// reply code, a transport failure, or a malformed response.
type AuthError struct {
	Code int
	Msg  string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("app access token exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("app access token exchange failed: code %d: %s", e.Code, e.Msg)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FetchError reports a record read that failed before the upstream
// produced a parseable reply (transport failure or non-JSON body).
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("record fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
