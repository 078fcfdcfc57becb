package models

// Profile is the branding profile edited on the setup and profile screens.
// Saving uses full-replace semantics; the server flips the user's onboarded
// flag as a side effect of the first save.
type Profile struct {
	Headline   string   `json:"headline"`
	Bio        string   `json:"bio"`
	Industries []string `json:"industries"`
	Goals      string   `json:"goals"`
	Tone       []string `json:"tone"`
	Keywords   []string `json:"keywords"`
}

// Summary is the read-only aggregate shown on the dashboard: parsed resume
// and provider-profile background plus the seed used for generation prompts.
type Summary struct {
	Background map[string]any `json:"background"`
	PromptSeed string         `json:"prompt_seed"`
}
