package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kanazen/ent/progressrecord"
)

// LegacyProgressKey is the reserved progress-record key used by the
// single-profile format that predates the profile directory.
const LegacyProgressKey = "legacy"

// DefaultProfileName names the profile created when legacy data is adopted.
const DefaultProfileName = "Default User"

// MigrateLegacy adopts a pre-profile progress blob into a newly created
// default profile. The blob is re-keyed unmodified; decode-and-repair happens
// on the first load like any other blob. The migration runs at most once:
// as soon as any profile exists it is a no-op. Called explicitly by the app
// at startup, never implicitly by Open.
func (s *Store) MigrateLegacy(ctx context.Context) (migrated bool, err error) {
	n, err := s.client.Profile.Query().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count profiles: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	exists, err := s.client.ProgressRecord.Query().
		Where(progressrecord.ProfileID(LegacyProgressKey)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("probe legacy record: %w", err)
	}
	if !exists {
		return false, nil
	}

	prof, err := s.ProfileRepo().Create(ctx, DefaultProfileName)
	if err != nil {
		return false, fmt.Errorf("create default profile: %w", err)
	}

	_, err = s.client.ProgressRecord.Update().
		Where(progressrecord.ProfileID(LegacyProgressKey)).
		SetProfileID(prof.ID).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("re-key legacy record: %w", err)
	}

	if err := s.PrefsRepo().Set(ctx, PrefLastProfile, prof.ID); err != nil {
		return false, err
	}
	return true, nil
}
