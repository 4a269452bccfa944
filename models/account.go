package models

// AccountStats summarises account activity. Monetary amounts arrive as
// decimal strings on the wire and are kept as strings to avoid float
// rounding on currency values.
type AccountStats struct {
	CreditsSpent string `json:"credits_spent"`
	UserSince    int64  `json:"user_since"`
	Currency     string `json:"currency"`
}

// AccountBalance is the currently available account credit.
type AccountBalance struct {
	Credits  string `json:"credits"`
	Currency string `json:"currency"`
}
