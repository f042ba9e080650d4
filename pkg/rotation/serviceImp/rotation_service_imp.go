package serviceImp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	croprepo "rotaplan/pkg/crop/repository"
	fieldrepo "rotaplan/pkg/field/repository"
	"rotaplan/pkg/rotation/planner"
	rotrepo "rotaplan/pkg/rotation/repository"
	"rotaplan/pkg/rotation/service"
	"rotaplan/pkg/rotation/types"
)

const (
	DefaultTimeout          = 10 * time.Second
	DefaultResidualNitrogen = 500.0
)

type Options struct {
	Timeout          time.Duration
	Workers          int
	ResidualNitrogen float64
}

type RotationSvc struct {
	crops   croprepo.CropRepository
	fields  fieldrepo.FieldRepository
	store   rotrepo.RotationRepository
	planner *planner.Planner
	log     *zap.Logger
	opts    Options
}

// NewRotationService wires the service. fields may be nil, in which case
// requests naming a field_id are rejected.
func NewRotationService(
	crops croprepo.CropRepository,
	quotas planner.QuotaReader,
	store rotrepo.RotationRepository,
	fields fieldrepo.FieldRepository,
	log *zap.Logger,
	opts Options,
) *RotationSvc {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ResidualNitrogen < 0 {
		opts.ResidualNitrogen = DefaultResidualNitrogen
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RotationSvc{
		crops:   crops,
		fields:  fields,
		store:   store,
		planner: planner.New(quotas, planner.WithWorkers(opts.Workers)),
		log:     log.Named("rotation"),
		opts:    opts,
	}
}

var _ service.RotationService = (*RotationSvc)(nil)

func (s *RotationSvc) Generate(ctx context.Context, uid string, req types.GenerateRequest) (*types.RotationResponse, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	residual := s.opts.ResidualNitrogen
	if req.ResidualNitrogenSupply != nil {
		residual = *req.ResidualNitrogenSupply
	}

	if req.FieldID != nil {
		if s.fields == nil {
			return nil, fmt.Errorf("%w: fields are not supported", apperr.ErrInvalidRequest)
		}
		if _, err := s.fields.FindByID(ctx, *req.FieldID, uid); err != nil {
			return nil, err
		}
	}

	crops, err := s.resolveCrops(ctx, req)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	res, err := s.planner.Plan(genCtx, planner.Request{
		UserID:                 uid,
		FieldSize:              req.FieldSize,
		NumberOfDivisions:      req.NumberOfDivisions,
		MaxYears:               req.MaxYears,
		ResidualNitrogenSupply: residual,
		Crops:                  crops,
	})
	if err != nil {
		s.log.Warn("generation failed", zap.String("uid", uid), zap.Duration("took", time.Since(start)), zap.Error(err))
		return nil, err
	}

	rot := &entities.Rotation{
		UserID:                 uid,
		FieldID:                req.FieldID,
		RotationName:           req.RotationName,
		FieldSize:              req.FieldSize,
		NumberOfDivisions:      req.NumberOfDivisions,
		MaxYears:               req.MaxYears,
		ResidualNitrogenSupply: residual,
		Entries:                res.Entries,
	}
	if err := s.store.Create(ctx, rot); err != nil {
		return nil, err
	}

	if len(res.Unplanted) > 0 {
		s.log.Info("rotation has unplanted cells",
			zap.Uint("rotation_id", rot.RotationID), zap.Int("unplanted", len(res.Unplanted)))
	}
	s.log.Info("rotation generated",
		zap.Uint("rotation_id", rot.RotationID),
		zap.String("uid", uid),
		zap.Int("entries", len(rot.Entries)),
		zap.Duration("took", time.Since(start)))
	resp := types.NewRotationResponse(rot)
	return &resp, nil
}

// resolveCrops loads the requested crops and returns them in request order,
// repeats included.
func (s *RotationSvc) resolveCrops(ctx context.Context, req types.GenerateRequest) ([]entities.Crop, error) {
	found, err := s.crops.List(ctx, croprepo.Filter{IDs: req.CropIDs()})
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entities.Crop, len(found))
	for _, c := range found {
		byID[c.CropID] = c
	}
	out := make([]entities.Crop, 0, len(req.Crops))
	for _, ref := range req.Crops {
		c, ok := byID[ref.CropID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown crop %d", apperr.ErrInvalidRequest, ref.CropID)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *RotationSvc) Get(ctx context.Context, uid string, id uint) (*types.RotationResponse, error) {
	rot, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := owned(rot, uid); err != nil {
		return nil, err
	}
	resp := types.NewRotationResponse(rot)
	return &resp, nil
}

func (s *RotationSvc) List(ctx context.Context, uid string) ([]types.RotationResponse, error) {
	rots, err := s.store.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := make([]types.RotationResponse, 0, len(rots))
	for i := range rots {
		out = append(out, types.NewRotationResponse(&rots[i]))
	}
	return out, nil
}

func (s *RotationSvc) UpdateDivisionSize(ctx context.Context, uid string, id uint, req types.UpdateDivisionSizeRequest) (*types.RotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, "division size updated", uid, id, func(r *entities.Rotation) ([]int, error) {
		return planner.Redistribute(r, *req.Division, *req.NewDivisionSize)
	})
}

func (s *RotationSvc) UpdateNitrogenBalance(ctx context.Context, uid string, id uint, req types.UpdateNitrogenBalanceRequest) (*types.RotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, "nitrogen balance updated", uid, id, func(r *entities.Rotation) ([]int, error) {
		i, err := planner.UpdateBalance(r, *req.Year, *req.Division, *req.NitrogenBalance)
		if err != nil {
			return nil, err
		}
		return []int{i}, nil
	})
}

func (s *RotationSvc) update(ctx context.Context, msg, uid string, id uint, edit rotrepo.MutateFunc) (*types.RotationResponse, error) {
	var changed int
	rot, err := s.store.Update(ctx, id, func(r *entities.Rotation) ([]int, error) {
		if err := owned(r, uid); err != nil {
			return nil, err
		}
		idx, err := edit(r)
		changed = len(idx)
		return idx, err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(msg, zap.Uint("rotation_id", id), zap.String("uid", uid), zap.Int("changed", changed))
	resp := types.NewRotationResponse(rot)
	return &resp, nil
}

func (s *RotationSvc) Delete(ctx context.Context, uid string, id uint) error {
	err := s.store.Delete(ctx, id, func(r *entities.Rotation) error { return owned(r, uid) })
	if err != nil {
		return err
	}
	s.log.Info("rotation deleted", zap.Uint("rotation_id", id), zap.String("uid", uid))
	return nil
}

func owned(r *entities.Rotation, uid string) error {
	if r.UserID != uid {
		return fmt.Errorf("%w: rotation %d belongs to another user", apperr.ErrUnauthorized, r.RotationID)
	}
	return nil
}
