package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/kanazen/internal/progress"
)

// ErrNotFound reports a missing record.
var ErrNotFound = errors.New("not found")

// ErrCorruptBlob reports a progress blob that could not be fully decoded.
// Load still returns usable defaults alongside it; callers log and proceed.
var ErrCorruptBlob = errors.New("corrupt progress blob")

// Profile is one learner on this machine.
type Profile struct {
	ID          string
	DisplayName string
	LastActive  time.Time
	Avatar      string // data URI, may be empty
}

// ProfileRepo manages the profile directory.
type ProfileRepo interface {
	// Create adds a profile and returns it with its generated id.
	Create(ctx context.Context, displayName string) (*Profile, error)

	// All returns every profile, most recently active first.
	All(ctx context.Context) ([]*Profile, error)

	// Get returns the profile with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Profile, error)

	// Rename changes the display name.
	Rename(ctx context.Context, id, displayName string) error

	// SetAvatar stores an avatar data URI. The URI is validated before any
	// write; oversized or malformed avatars are rejected.
	SetAvatar(ctx context.Context, id, dataURI string) error

	// Touch updates the last-active time.
	Touch(ctx context.Context, id string, now time.Time) error

	// Delete removes the profile and its progress record.
	Delete(ctx context.Context, id string) error
}

// ProgressRepo persists one progress blob per profile.
type ProgressRepo interface {
	// Load returns the profile's progress, merged over defaults. A missing
	// record yields pristine defaults; a corrupt blob yields defaults and
	// an error wrapping ErrCorruptBlob for logging.
	Load(ctx context.Context, profileID string) (*progress.Progress, error)

	// Save replaces the profile's whole blob atomically.
	Save(ctx context.Context, profileID string, p *progress.Progress) error

	// Delete removes the profile's progress record.
	Delete(ctx context.Context, profileID string) error
}

// Preference keys.
const (
	PrefLastProfile = "last_profile"
	PrefTheme       = "theme"   // "light" | "dark"
	PrefAIQuiz      = "ai_quiz" // "on" | "off"
)

// PrefsRepo stores global key/value preferences.
type PrefsRepo interface {
	// Get returns the value for key. ok is false when the key is unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Unset removes the key.
	Unset(ctx context.Context, key string) error
}

// QuizEventData captures one answered quiz question.
type QuizEventData struct {
	ProfileID string
	Glyph     string
	Correct   bool
	Source    string // "local" | "ai"
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a logged LLM request row.
type LLMRequest struct {
	Sequence     int64
	Timestamp    time.Time
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the event logs.
type EventRepo interface {
	// AppendQuizAnswer records one answered question.
	AppendQuizAnswer(ctx context.Context, data QuizEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the newest LLM request rows, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error)
}
