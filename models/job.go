package models

// Job describes a single translation request as submitted to the service.
// Text jobs carry the source text in BodySrc; file jobs reference a local
// file via FilePath, which the client replaces with FileKey before the
// payload is encoded for a multipart upload.
type Job struct {
	// Type is the job kind: "text" or "file".
	Type string `json:"type,omitempty"`

	// Slug is a short, human-readable title for the job.
	Slug string `json:"slug,omitempty"`

	// BodySrc is the source text to translate. Required for text jobs.
	BodySrc string `json:"body_src,omitempty"`

	// LcSrc and LcTgt are the source and target language codes (e.g. "en", "ja").
	LcSrc string `json:"lc_src,omitempty"`
	LcTgt string `json:"lc_tgt,omitempty"`

	// Tier selects the translation quality level: "machine", "standard",
	// "pro" or "ultra".
	Tier string `json:"tier,omitempty"`

	// Force, when set to 1, resubmits the job even if an identical one exists.
	Force int `json:"force,omitempty"`

	// Comment is an instruction shown to the translator.
	Comment string `json:"comment,omitempty"`

	// UsePreferred, when set to 1, routes the job to preferred translators.
	UsePreferred int `json:"use_preferred,omitempty"`

	// CallbackURL receives status-change notifications for the job.
	CallbackURL string `json:"callback_url,omitempty"`

	// AutoApprove, when set to 1, approves the translation as soon as it is done.
	AutoApprove int `json:"auto_approve,omitempty"`

	// CustomData is an opaque string echoed back with the job.
	CustomData string `json:"custom_data,omitempty"`

	// FilePath is the local path of the file to upload for file jobs.
	// It never reaches the wire: upload-capable calls strip it and set
	// FileKey to the name of the multipart part carrying the file.
	FilePath string `json:"file_path,omitempty"`

	// FileKey references the multipart part holding the file contents.
	// Populated by the client; callers should leave it empty.
	FileKey string `json:"file_key,omitempty"`

	// Identifier distinguishes entries inside a batch submission.
	Identifier string `json:"identifier,omitempty"`
}
