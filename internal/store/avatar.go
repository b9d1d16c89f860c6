package store

import (
	"fmt"
	"strings"
)

// MaxAvatarBytes bounds the stored avatar data URI. 256 KiB is plenty for a
// terminal-rendered thumbnail.
const MaxAvatarBytes = 256 * 1024

// ValidateAvatar checks an avatar data URI before any state is touched.
// Rejection here is a user-facing error, not a corruption case.
func ValidateAvatar(dataURI string) error {
	if dataURI == "" {
		return nil
	}
	if !strings.HasPrefix(dataURI, "data:image/") {
		return fmt.Errorf("avatar must be an image data URI")
	}
	if len(dataURI) > MaxAvatarBytes {
		return fmt.Errorf("avatar exceeds %d KiB", MaxAvatarBytes/1024)
	}
	return nil
}
