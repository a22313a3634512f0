package upload

import "errors"

var (
	ErrEmptyFile    = errors.New("uploaded file is empty")
	ErrFileTooLarge = errors.New("uploaded file exceeds maximum allowed size")
)
