package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	croprepo "rotaplan/pkg/crop/repository"
	rotrepo "rotaplan/pkg/rotation/repository"
)

type fakeCrops struct {
	crops []entities.Crop
	err   error
	calls int
}

func (f *fakeCrops) Create(context.Context, *entities.Crop) error      { return errors.New("unused") }
func (f *fakeCrops) BulkCreate(context.Context, []entities.Crop) error { return errors.New("unused") }
func (f *fakeCrops) FindByID(context.Context, uint) (*entities.Crop, error) {
	return nil, errors.New("unused")
}

func (f *fakeCrops) List(_ context.Context, flt croprepo.Filter) ([]entities.Crop, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Crop
	for _, c := range f.crops {
		if len(flt.IDs) == 0 || slices.Contains(flt.IDs, c.CropID) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeQuotas struct {
	err   error
	calls int
}

func (q *fakeQuotas) Quota(context.Context, string, uint) (int, error) {
	q.calls++
	if q.err != nil {
		return 0, q.err
	}
	return 1, nil
}

type blockingQuotas struct{}

func (blockingQuotas) Quota(ctx context.Context, _ string, _ uint) (int, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

// fakeStore keeps rotations in memory. Update works on a copy and only
// commits it when the mutation succeeds.
type fakeStore struct {
	mu      sync.Mutex
	next    uint
	rots    map[uint]entities.Rotation
	creates int
	err     error
}

func newFakeStore() *fakeStore { return &fakeStore{rots: map[uint]entities.Rotation{}} }

func (s *fakeStore) Create(_ context.Context, r *entities.Rotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.err != nil {
		return s.err
	}
	s.next++
	r.RotationID = s.next
	for i := range r.Entries {
		r.Entries[i].RotationID = r.RotationID
		r.Entries[i].EntryID = uint(i + 1)
	}
	s.rots[r.RotationID] = clone(*r)
	return nil
}

func (s *fakeStore) Get(_ context.Context, id uint) (*entities.Rotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rots[id]
	if !ok {
		return nil, fmt.Errorf("rotation %d: %w", id, apperr.ErrNotFound)
	}
	c := clone(r)
	return &c, nil
}

func (s *fakeStore) ListByUser(_ context.Context, uid string) ([]entities.Rotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Rotation
	for _, r := range s.rots {
		if r.UserID == uid {
			out = append(out, clone(r))
		}
	}
	slices.SortFunc(out, func(a, b entities.Rotation) int { return int(b.RotationID) - int(a.RotationID) })
	return out, nil
}

func (s *fakeStore) Update(ctx context.Context, id uint, fn rotrepo.MutateFunc) (*entities.Rotation, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := fn(r); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rots[id] = clone(*r)
	return r, nil
}

func (s *fakeStore) Delete(ctx context.Context, id uint, check func(*entities.Rotation) error) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if check != nil {
		if err := check(r); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rots, id)
	return nil
}

func clone(r entities.Rotation) entities.Rotation {
	r.Entries = slices.Clone(r.Entries)
	return r
}

type fakeFields struct{ owned map[uint]string }

func (f fakeFields) Create(context.Context, *entities.Field) error { return errors.New("unused") }

func (f fakeFields) FindByID(_ context.Context, id uint, uid string) (*entities.Field, error) {
	if f.owned[id] != uid {
		return nil, fmt.Errorf("field %d: %w", id, apperr.ErrNotFound)
	}
	return &entities.Field{FieldID: id, UserID: uid}, nil
}

func (f fakeFields) ListByUser(context.Context, string) ([]entities.Field, error) { return nil, nil }
