package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kanazen/ent"
	"github.com/abhisek/kanazen/ent/profile"
	"github.com/abhisek/kanazen/ent/progressrecord"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, displayName string) (*Profile, error) {
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	p, err := r.client.Profile.Create().
		SetDisplayName(displayName).
		SetLastActiveMs(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) All(ctx context.Context) ([]*Profile, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldLastActiveMs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}

	out := make([]*Profile, len(rows))
	for i, p := range rows {
		out[i] = entProfileToProfile(p)
	}
	return out, nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	p, err := r.client.Profile.Get(ctx, uid)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) Rename(ctx context.Context, id, displayName string) error {
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	err = r.client.Profile.UpdateOneID(uid).
		SetDisplayName(displayName).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("rename profile: %w", err)
	}
	return nil
}

func (r *profileRepo) SetAvatar(ctx context.Context, id, dataURI string) error {
	if err := ValidateAvatar(dataURI); err != nil {
		return err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	err = r.client.Profile.UpdateOneID(uid).
		SetAvatar(dataURI).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	return nil
}

func (r *profileRepo) Touch(ctx context.Context, id string, now time.Time) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	err = r.client.Profile.UpdateOneID(uid).
		SetLastActiveMs(now.UnixMilli()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("touch profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	if err := r.client.Profile.DeleteOneID(uid).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	// The progress record goes with the profile.
	_, err = r.client.ProgressRecord.Delete().
		Where(progressrecord.ProfileID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}
	return nil
}

func entProfileToProfile(p *ent.Profile) *Profile {
	return &Profile{
		ID:          p.ID.String(),
		DisplayName: p.DisplayName,
		LastActive:  time.UnixMilli(p.LastActiveMs),
		Avatar:      p.Avatar,
	}
}
