package models

// Action is the payload for updating a translation job in progress.
// The service accepts "purchase", "revise", "approve" and "reject" actions;
// the remaining fields qualify the chosen action and are ignored otherwise.
type Action struct {
	Action string `json:"action"`

	// Comment carries revision/rejection instructions for the translator.
	Comment string `json:"comment,omitempty"`

	// Rating (1-5) and the feedback fields apply to "approve".
	Rating        int    `json:"rating,omitempty"`
	ForTranslator string `json:"for_translator,omitempty"`
	ForMygengo    string `json:"for_mygengo,omitempty"`
	Public        int    `json:"public,omitempty"`

	// Reason, Captcha and FollowUp apply to "reject".
	Reason   string `json:"reason,omitempty"`
	Captcha  string `json:"captcha,omitempty"`
	FollowUp string `json:"follow_up,omitempty"`
}
