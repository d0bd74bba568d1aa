package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs the first 512 bytes and checks the detected
// MIME type against allowed prefixes or exact types, e.g. "audio/".
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsAudio reports whether the sniffed type is an audio container.
// Browser recordings often come through as video/webm with an audio-only
// track, so that container is accepted too.
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/") || mimeType == "video/webm"
}
