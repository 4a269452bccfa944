package models

// Language describes one language supported by the service.
type Language struct {
	Language      string `json:"language"`
	LocalizedName string `json:"localized_name"`
	Lc            string `json:"lc"`
	UnitType      string `json:"unit_type"`
}

// LanguagePair describes a translatable source/target combination together
// with its per-unit price for a given tier.
type LanguagePair struct {
	LcSrc     string `json:"lc_src"`
	LcTgt     string `json:"lc_tgt"`
	Tier      string `json:"tier"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
}
