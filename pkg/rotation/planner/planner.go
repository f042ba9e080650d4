// Package planner builds multi-year crop rotations for a field split into
// divisions, and applies the two edits a generated rotation supports.
//
// Generation is a greedy, cell-by-cell walk over the year x division grid.
// A division's choice in year Y only reads that division's year Y-1 entry, so
// divisions of one year may be planned concurrently.
package planner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

// Request holds the parameters of one generation.
type Request struct {
	UserID                 string
	FieldSize              float64
	NumberOfDivisions      int
	MaxYears               int
	ResidualNitrogenSupply float64
	Crops                  []entities.Crop
}

// MaxCells bounds the years x divisions grid of one generation.
const MaxCells = 10_000

// ValidateGrid rejects grids with a non-positive side or more than MaxCells cells.
func ValidateGrid(divisions, years int) error {
	switch {
	case divisions <= 0:
		return fmt.Errorf("%w: number of divisions must be positive", apperr.ErrInvalidRequest)
	case years <= 0:
		return fmt.Errorf("%w: max years must be positive", apperr.ErrInvalidRequest)
	case divisions > MaxCells/years:
		return fmt.Errorf("%w: %d years x %d divisions exceeds %d cells", apperr.ErrInvalidRequest, years, divisions, MaxCells)
	}
	return nil
}

func (r Request) Validate() error {
	switch {
	case len(r.Crops) == 0:
		return fmt.Errorf("%w: no crops provided", apperr.ErrInvalidRequest)
	case !(r.FieldSize > 0):
		return fmt.Errorf("%w: field size must be positive", apperr.ErrInvalidRequest)
	case !(r.ResidualNitrogenSupply >= 0):
		return fmt.Errorf("%w: residual nitrogen supply must not be negative", apperr.ErrInvalidRequest)
	}
	return ValidateGrid(r.NumberOfDivisions, r.MaxYears)
}

// Result is a generated rotation. Entries are ordered by year, then division.
// Unplanted lists the cells for which no crop was eligible.
type Result struct {
	Entries   []entities.RotationEntry
	Unplanted []Cell
}

type Planner struct {
	quotas  QuotaReader
	workers int
}

type Option func(*Planner)

// WithWorkers plans up to n divisions of the same year concurrently.
func WithWorkers(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New returns a Planner reading selection quotas from quotas. A nil reader
// treats every crop as having quota left.
func New(quotas QuotaReader, opts ...Option) *Planner {
	p := &Planner{quotas: quotas, workers: 1}
	for _, o := range opts {
		o(p)
	}
	return p
}

type division struct {
	number  int
	history History

	prev     *entities.RotationEntry
	prevCrop entities.Crop
	next     *entities.RotationEntry
	nextCrop entities.Crop
}

func (d *division) assign(c entities.Crop, year int, size, balance float64) {
	d.history[c.CropID] = year
	d.next = &entities.RotationEntry{
		Year:            year,
		Division:        d.number,
		CropID:          c.CropID,
		CropName:        c.Name,
		DivisionSize:    size,
		NitrogenBalance: balance,
	}
	d.nextCrop = c
}

// Plan generates the rotation. It fails on invalid input, on a quota lookup
// error and when ctx ends; it never returns a partial plan.
func (p *Planner) Plan(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	avail := Availability{Quotas: p.quotas, UserID: req.UserID}
	size := req.FieldSize / float64(req.NumberOfDivisions)

	divs := make([]*division, req.NumberOfDivisions)
	for i := range divs {
		divs[i] = &division{number: i + 1, history: NewHistory(req.Crops)}
	}

	res := &Result{}
	for year := 1; year <= req.MaxYears; year++ {
		if err := p.planYear(ctx, req, avail, year, size, divs); err != nil {
			return nil, err
		}
		for _, d := range divs {
			if d.next == nil {
				res.Unplanted = append(res.Unplanted, Cell{Year: year, Division: d.number})
			} else {
				res.Entries = append(res.Entries, *d.next)
			}
			d.prev, d.prevCrop = d.next, d.nextCrop
		}
	}
	return res, nil
}

func (p *Planner) planYear(ctx context.Context, req Request, avail Availability, year int, size float64, divs []*division) error {
	if p.workers <= 1 || len(divs) == 1 {
		for _, d := range divs {
			if err := planCell(ctx, req, avail, year, size, d); err != nil {
				return err
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, d := range divs {
		d := d
		g.Go(func() error { return planCell(gctx, req, avail, year, size, d) })
	}
	return g.Wait()
}

func planCell(ctx context.Context, req Request, avail Availability, year int, size float64, d *division) error {
	if err := ctx.Err(); err != nil {
		return aborted(err)
	}
	d.next = nil

	if d.prev == nil {
		c := req.Crops[(d.number+year-2)%len(req.Crops)]
		ok, err := avail.IsAvailable(ctx, c, year, d.history)
		if err != nil {
			return cellError(ctx, err)
		}
		if ok {
			d.assign(c, year, size, NitrogenBalance(c, c.NitrogenSupply, req.ResidualNitrogenSupply))
		}
		return nil
	}

	pool := d.prevCrop.NitrogenSupply + d.prev.NitrogenBalance
	for _, r := range rankByBalance(req.Crops, pool) {
		if Conflicts(d.prevCrop, r.crop) {
			continue
		}
		ok, err := avail.IsAvailable(ctx, r.crop, year, d.history)
		if err != nil {
			return cellError(ctx, err)
		}
		if ok {
			d.assign(r.crop, year, size, r.balance)
			return nil
		}
	}
	return nil
}

type ranked struct {
	crop    entities.Crop
	balance float64
}

// rankByBalance orders crops by the balance they would leave on pool, lowest
// first. Equal balances keep candidate order.
func rankByBalance(crops []entities.Crop, pool float64) []ranked {
	out := make([]ranked, len(crops))
	for i, c := range crops {
		out[i] = ranked{crop: c, balance: NitrogenBalance(c, pool, 0)}
	}
	slices.SortStableFunc(out, func(a, b ranked) int { return cmp.Compare(a.balance, b.balance) })
	return out
}

func cellError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return aborted(ctxErr)
	}
	return err
}

func aborted(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: rotation generation exceeded its deadline", apperr.ErrTimeout)
	}
	return fmt.Errorf("%w: rotation generation aborted: %w", apperr.ErrTimeout, err)
}
