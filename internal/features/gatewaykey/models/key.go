package models

// KeyCheckRequest carries the user-supplied payment-processor secret key. It
// is forwarded once as a bearer credential and discarded.
type KeyCheckRequest struct {
	SecretKey string `json:"secret_key" example:"sk_test_4eC39HqLyjWDarjtT1zdp7dc"`
}

// KeyCheckVerdict is the immutable result of one key check. Account fields
// are set only on a valid verdict. LiveMode is true only when the key carries
// the live prefix AND the account actually has charging enabled.
type KeyCheckVerdict struct {
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
	AccountName string `json:"account_name,omitempty"`
	AccountID   string `json:"account_id,omitempty"`
	LiveMode    bool   `json:"live_mode"`
}
