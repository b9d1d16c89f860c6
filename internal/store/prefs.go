package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kanazen/ent"
	"github.com/abhisek/kanazen/ent/preference"
)

// prefsRepo implements PrefsRepo using the ent client.
type prefsRepo struct {
	client *ent.Client
}

func (r *prefsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	p, err := r.client.Preference.Query().
		Where(preference.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	return p.Value, true, nil
}

func (r *prefsRepo) Set(ctx context.Context, key, value string) error {
	err := r.client.Preference.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(preference.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *prefsRepo) Unset(ctx context.Context, key string) error {
	_, err := r.client.Preference.Delete().
		Where(preference.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("unset preference %q: %w", key, err)
	}
	return nil
}
