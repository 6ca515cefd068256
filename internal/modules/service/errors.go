package service

import "errors"

// Service layer errors mapped to HTTP statuses by the handlers.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")

	ErrBlankTaskTitle = errors.New("task title cannot be blank")
	ErrBlankQuestion  = errors.New("question cannot be blank")

	ErrUnsupportedLanguage = errors.New("unsupported language code")
	ErrUnsupportedPreview  = errors.New("preview must be an image, gif or mp4 video")

	ErrPromptTooLarge = errors.New("prompt exceeds the token budget")
)
