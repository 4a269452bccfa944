package models

// Glossary describes a customer glossary usable with translation jobs.
type Glossary struct {
	ID               int64  `json:"id"`
	CustomerUserID   int64  `json:"customer_user_id"`
	SourceLanguageID int64  `json:"source_language_id"`
	SourceLanguage   string `json:"source_language_code"`
	TargetLanguages  []struct {
		ID   int64  `json:"id"`
		Code string `json:"language_code"`
	} `json:"target_languages"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	UnitCount int    `json:"unit_count"`
	Ctime     string `json:"ctime"`
}
