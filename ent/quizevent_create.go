// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanazen/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *QuizEventCreate) SetProfileID(v string) *QuizEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetGlyph sets the "glyph" field.
func (_c *QuizEventCreate) SetGlyph(v string) *QuizEventCreate {
	_c.mutation.SetGlyph(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuizEventCreate) SetCorrect(v bool) *QuizEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *QuizEventCreate) SetSource(v string) *QuizEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "QuizEvent.profile_id"`)}
	}
	if _, ok := _c.mutation.Glyph(); !ok {
		return &ValidationError{Name: "glyph", err: errors.New(`ent: missing required field "QuizEvent.glyph"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizEvent.correct"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuizEvent.source"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(quizevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.Glyph(); ok {
		_spec.SetField(quizevent.FieldGlyph, field.TypeString, value)
		_node.Glyph = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(quizevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizEventCreate) OnConflict(opts ...sql.ConflictOption) *QuizEventUpsertOne {
	_c.conflict = opts
	return &QuizEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizEventCreate) OnConflictColumns(columns ...string) *QuizEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizEventUpsertOne{
		create: _c,
	}
}

type (
	// QuizEventUpsertOne is the builder for "upsert"-ing
	//  one QuizEvent node.
	QuizEventUpsertOne struct {
		create *QuizEventCreate
	}

	// QuizEventUpsert is the "OnConflict" setter.
	QuizEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *QuizEventUpsert) SetProfileID(v string) *QuizEventUpsert {
	u.Set(quizevent.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *QuizEventUpsert) UpdateProfileID() *QuizEventUpsert {
	u.SetExcluded(quizevent.FieldProfileID)
	return u
}

// SetGlyph sets the "glyph" field.
func (u *QuizEventUpsert) SetGlyph(v string) *QuizEventUpsert {
	u.Set(quizevent.FieldGlyph, v)
	return u
}

// UpdateGlyph sets the "glyph" field to the value that was provided on create.
func (u *QuizEventUpsert) UpdateGlyph() *QuizEventUpsert {
	u.SetExcluded(quizevent.FieldGlyph)
	return u
}

// SetCorrect sets the "correct" field.
func (u *QuizEventUpsert) SetCorrect(v bool) *QuizEventUpsert {
	u.Set(quizevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuizEventUpsert) UpdateCorrect() *QuizEventUpsert {
	u.SetExcluded(quizevent.FieldCorrect)
	return u
}

// SetSource sets the "source" field.
func (u *QuizEventUpsert) SetSource(v string) *QuizEventUpsert {
	u.Set(quizevent.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuizEventUpsert) UpdateSource() *QuizEventUpsert {
	u.SetExcluded(quizevent.FieldSource)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizEventUpsertOne) UpdateNewValues() *QuizEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(quizevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(quizevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuizEventUpsertOne) Ignore() *QuizEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizEventUpsertOne) DoNothing() *QuizEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizEventCreate.OnConflict
// documentation for more info.
func (u *QuizEventUpsertOne) Update(set func(*QuizEventUpsert)) *QuizEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *QuizEventUpsertOne) SetProfileID(v string) *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *QuizEventUpsertOne) UpdateProfileID() *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateProfileID()
	})
}

// SetGlyph sets the "glyph" field.
func (u *QuizEventUpsertOne) SetGlyph(v string) *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetGlyph(v)
	})
}

// UpdateGlyph sets the "glyph" field to the value that was provided on create.
func (u *QuizEventUpsertOne) UpdateGlyph() *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateGlyph()
	})
}

// SetCorrect sets the "correct" field.
func (u *QuizEventUpsertOne) SetCorrect(v bool) *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuizEventUpsertOne) UpdateCorrect() *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetSource sets the "source" field.
func (u *QuizEventUpsertOne) SetSource(v string) *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuizEventUpsertOne) UpdateSource() *QuizEventUpsertOne {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *QuizEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuizEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuizEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
	conflict []sql.ConflictOption
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuizEventUpsertBulk {
	_c.conflict = opts
	return &QuizEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizEventCreateBulk) OnConflictColumns(columns ...string) *QuizEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizEventUpsertBulk{
		create: _c,
	}
}

// QuizEventUpsertBulk is the builder for "upsert"-ing
// a bulk of QuizEvent nodes.
type QuizEventUpsertBulk struct {
	create *QuizEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizEventUpsertBulk) UpdateNewValues() *QuizEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(quizevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(quizevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuizEventUpsertBulk) Ignore() *QuizEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizEventUpsertBulk) DoNothing() *QuizEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizEventCreateBulk.OnConflict
// documentation for more info.
func (u *QuizEventUpsertBulk) Update(set func(*QuizEventUpsert)) *QuizEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *QuizEventUpsertBulk) SetProfileID(v string) *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *QuizEventUpsertBulk) UpdateProfileID() *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateProfileID()
	})
}

// SetGlyph sets the "glyph" field.
func (u *QuizEventUpsertBulk) SetGlyph(v string) *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetGlyph(v)
	})
}

// UpdateGlyph sets the "glyph" field to the value that was provided on create.
func (u *QuizEventUpsertBulk) UpdateGlyph() *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateGlyph()
	})
}

// SetCorrect sets the "correct" field.
func (u *QuizEventUpsertBulk) SetCorrect(v bool) *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuizEventUpsertBulk) UpdateCorrect() *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetSource sets the "source" field.
func (u *QuizEventUpsertBulk) SetSource(v string) *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuizEventUpsertBulk) UpdateSource() *QuizEventUpsertBulk {
	return u.Update(func(s *QuizEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *QuizEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuizEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
