package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kanazen/ent"
	"github.com/abhisek/kanazen/ent/progressrecord"
	"github.com/abhisek/kanazen/internal/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, profileID string) (*progress.Progress, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.New(), nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}

	// Decode merges over defaults and survives corrupt blobs. The returned
	// progress is always usable; the wrapped sentinel lets callers tell the
	// recoverable case from a real query failure.
	p, decodeErr := progress.Decode([]byte(rec.Data))
	if decodeErr != nil {
		return p, fmt.Errorf("%w: %v", ErrCorruptBlob, decodeErr)
	}
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, profileID string, p *progress.Progress) error {
	blob, err := p.Encode()
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	err = r.client.ProgressRecord.Create().
		SetProfileID(profileID).
		SetData(string(blob)).
		OnConflictColumns(progressrecord.FieldProfileID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, profileID string) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}
	return nil
}
