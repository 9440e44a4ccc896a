// SPDX-License-Identifier: MIT
//
// File: code.go
// Role: Code entity, construction and raw accessors.
// Lifecycle:
//   - New validates eagerly and never returns a partial Code.
//   - A Code has no mutators; derived codes (Reduced) are new instances.
// Concurrency:
//   - Per-sector label indices and incidence maps are built in parallel via
//     errgroup unless WithSequential is given. Either way the work stops at
//     the first cancelled WithContext check.
//   - After New returns, a Code is read-only and safe for concurrent queries.

package csscode

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csslab/labels"
	"github.com/katalvlaran/csslab/setalg"
)

// Code is a validated CSS code: an X family and a Z family of generator sets
// whose X/Z pairs all overlap evenly.
type Code struct {
	cfg config

	families  [2]setalg.Family
	qubits    []int
	checks    [2]*labels.Index
	incidence [2]map[int][]int
}

// New validates (sx, sz) and builds the label and incidence structures.
//
// Stage 1 (Validate): every x ∈ sx and z ∈ sz must overlap evenly, otherwise
// ErrInvalidCode naming the first offending pair.
// Stage 2 (Universe): qubits = ⋃(sx ∪ sz); empty ⇒ ErrEmptyCode.
// Stage 3 (Derive): per sector, the canonical label index and the total
// qubit→labels incidence over the universe. A done WithContext context
// aborts this stage with its error (errors.Is(err, context.Canceled)).
//
// Families are stored verbatim (cloned); duplicates and empties only vanish
// from the labelled views.
//
// Complexity: O(|sx|·|sz|·w) validation plus O(k log k) labelling per sector.
func New(sx, sz setalg.Family, opts ...Option) (*Code, error) {
	cfg := newConfig(opts...)
	ctx := cfg.ctx
	cfg.ctx = nil

	if i, j, overlap, found := setalg.FirstAnticommuting(sx, sz); found {
		return nil, errors.Wrapf(ErrInvalidCode, "%s: X[%d]=%s and Z[%d]=%s overlap on %d qubits",
			cfg.name, i, sx[i], j, sz[j], overlap)
	}

	qubits := setalg.Universe(sx, sz)
	if len(qubits) == 0 {
		return nil, errors.Wrapf(ErrEmptyCode, "%s: %d X and %d Z generators", cfg.name, len(sx), len(sz))
	}

	c := &Code{
		cfg:      cfg,
		families: [2]setalg.Family{sx.Clone(), sz.Clone()},
		qubits:   qubits,
	}

	if err := c.derive(ctx, cfg.sequential); err != nil {
		return nil, errors.Wrapf(err, "%s: deriving sectors", cfg.name)
	}

	klog.V(2).Infof("csscode: built %s: n=%d, |Sx|=%d (%d distinct), |Sz|=%d (%d distinct)",
		cfg.name, len(qubits), len(sx), c.checks[X].Len(), len(sz), c.checks[Z].Len())

	return c, nil
}

// derive fills the label index and incidence of both sectors, one
// goroutine per sector unless sequential.
func (c *Code) derive(ctx context.Context, sequential bool) error {
	sector := func(ctx context.Context, s Sector) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ix := labels.New(c.families[s])
		if err := ctx.Err(); err != nil {
			return err
		}
		c.checks[s] = ix
		c.incidence[s] = ix.Incidence(c.qubits)

		return nil
	}

	if sequential {
		for _, s := range Sectors {
			if err := sector(ctx, s); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range Sectors {
		s := s
		g.Go(func() error { return sector(gctx, s) })
	}

	return g.Wait()
}

// Name returns the name given with WithName, or "css".
func (c *Code) Name() string { return c.cfg.name }

// Family returns a copy of the family of sector s exactly as passed to New.
func (c *Code) Family(s Sector) setalg.Family { return c.families[s].Clone() }

// Qubits returns the sorted qubit universe ⋃(Sx ∪ Sz).
func (c *Code) Qubits() []int { return append([]int(nil), c.qubits...) }

// N returns the number of qubits in the universe.
func (c *Code) N() int { return len(c.qubits) }

// Checks returns the label index of sector s (labels 0..k-1 in canonical order).
func (c *Code) Checks(s Sector) *labels.Index { return c.checks[s] }

// Incidence returns, for qubit q, the sorted labels of the generators
// containing it in each sector. Total over Qubits(); a qubit outside the
// universe gets empty entries.
func (c *Code) Incidence(q int) map[Sector][]int {
	out := make(map[Sector][]int, 2)
	for _, s := range Sectors {
		ls, ok := c.incidence[s][q]
		if !ok {
			ls = []int{}
		}
		out[s] = append([]int{}, ls...)
	}

	return out
}

// QubitDict returns the full qubit → sector → labels map.
func (c *Code) QubitDict() map[int]map[Sector][]int {
	out := make(map[int]map[Sector][]int, len(c.qubits))
	for _, q := range c.qubits {
		out[q] = c.Incidence(q)
	}

	return out
}

// String summarises the code, e.g. "steane[[7,1]] |Sx|=3 |Sz|=3".
func (c *Code) String() string {
	return fmt.Sprintf("%s[[%d,%d]] |Sx|=%d |Sz|=%d", c.cfg.name, c.N(), c.K(), c.checks[X].Len(), c.checks[Z].Len())
}
