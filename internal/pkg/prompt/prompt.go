// Package prompt renders the assistance prompts sent to the completion
// service. Build is pure: identical inputs always produce identical output.
package prompt

import (
	"fmt"
	"strings"
)

// Kind is one of the fixed assistance categories.
type Kind string

const (
	KindDescription Kind = "description"
	KindTasks       Kind = "tasks"
	KindImprove     Kind = "improve"
	KindNotes       Kind = "notes"
	KindCustom      Kind = "custom"
)

// ParseKind validates a raw kind value.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDescription, KindTasks, KindImprove, KindNotes, KindCustom:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown assist kind %q", s)
}

const (
	descriptionPlaceholder    = "No description provided"
	additionalInfoPlaceholder = "No additional information"
)

var languageNames = map[string]string{
	"en": "English",
	"ru": "Russian",
	"es": "Spanish",
}

// LanguageName maps a language code to the natural language name the model
// is asked to respond in. Unmapped codes default to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// Context is the project state a prompt is rendered from.
type Context struct {
	Title            string
	Description      string
	AdditionalInfo   string
	ResponseLanguage string // language code, e.g. "en"
	UserQuestion     string // only used by KindCustom
}

// Build renders the prompt for the given kind. Missing description or
// additional info is substituted with a fixed placeholder so the rendered
// prompt is always well-formed.
func Build(kind Kind, c Context) string {
	description := strings.TrimSpace(c.Description)
	if description == "" {
		description = descriptionPlaceholder
	}
	additionalInfo := strings.TrimSpace(c.AdditionalInfo)
	if additionalInfo == "" {
		additionalInfo = additionalInfoPlaceholder
	}
	lang := LanguageName(c.ResponseLanguage)

	// Field values are embedded between plain quotes, not escaped.
	switch kind {
	case KindCustom:
		return fmt.Sprintf("Context: Project \"%s\" with description: \"%s\". Additional info: \"%s\". Question: %s. Respond in %s.",
			c.Title, description, additionalInfo, c.UserQuestion, lang)
	case KindDescription:
		return fmt.Sprintf("Based on project title \"%s\" and additional info: \"%s\", create a professional description. Respond in %s.",
			c.Title, additionalInfo, lang)
	case KindTasks:
		return fmt.Sprintf("Based on project \"%s\" with description: \"%s\" and additional info: \"%s\", break it down into 5 specific stages. Respond in %s.",
			c.Title, description, additionalInfo, lang)
	case KindImprove:
		return fmt.Sprintf("Analyze project \"%s\" with description: \"%s\" and additional info: \"%s\". Suggest 3 improvements. Respond in %s.",
			c.Title, description, additionalInfo, lang)
	case KindNotes:
		return fmt.Sprintf("Based on project \"%s\" with description: \"%s\" and additional info: \"%s\", write comprehensive notes. Respond in %s.",
			c.Title, description, additionalInfo, lang)
	}
	return ""
}
