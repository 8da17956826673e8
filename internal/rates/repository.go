// Package rates resolves the versioned statutory rate tables the
// calculators run against. A Source supplies candidate records already
// filtered to effective_date <= as_of and active; the Repository applies
// the selection rules (latest-wins for single-valued rates, ascending
// ordered sets for bands and tiers) and memoizes the result per as-of
// date, since resolved rates are read-only and shared across a whole
// payroll run.
package rates

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
)

// Source supplies rate records applicable on a date: active records whose
// effective date is on or before asOf. Implementations must not return
// records outside that window; ordering is the Repository's job.
type Source interface {
	TaxBands(ctx context.Context, asOf time.Time) ([]domain.TaxBand, error)
	Reliefs(ctx context.Context, asOf time.Time) ([]domain.Relief, error)
	NSSFRates(ctx context.Context, asOf time.Time) ([]domain.NSSFRate, error)
	SHIFRates(ctx context.Context, asOf time.Time) ([]domain.SHIFRate, error)
	HousingLevyRates(ctx context.Context, asOf time.Time) ([]domain.HousingLevyRate, error)
}

// Resolved is the full applicable rate set for one as-of date. A missing
// category is an empty slice or nil pointer, never an error: calculators
// degrade to zero contributions so one misconfigured table cannot block a
// payroll run.
type Resolved struct {
	AsOf time.Time

	// TaxBands is the active band set, ascending by lower limit.
	TaxBands []domain.TaxBand
	// Reliefs holds the latest-effective active relief per type.
	Reliefs map[domain.ReliefType]domain.Relief
	// NSSFTiers is the active tier set, ascending by tier number.
	NSSFTiers []domain.NSSFRate
	// SHIF and HousingLevy are the latest-effective active records, or nil.
	SHIF        *domain.SHIFRate
	HousingLevy *domain.HousingLevyRate
}

// Relief returns the resolved relief record for a type, if configured.
func (r *Resolved) Relief(t domain.ReliefType) (domain.Relief, bool) {
	rel, ok := r.Reliefs[t]
	return rel, ok
}

// ReliefCap returns the configured maximum amount for a cap-style relief
// type. ok is false when the relief or its cap is not configured.
func (r *Resolved) ReliefCap(t domain.ReliefType) (decimal.Decimal, bool) {
	rel, ok := r.Reliefs[t]
	if !ok || rel.MaximumAmount == nil {
		return decimal.Zero, false
	}
	return *rel.MaximumAmount, true
}

// Repository resolves and memoizes rate sets by as-of date.
type Repository struct {
	source Source

	mu    sync.Mutex
	cache map[string]*Resolved
}

// NewRepository creates a repository over a source.
func NewRepository(source Source) *Repository {
	return &Repository{
		source: source,
		cache:  make(map[string]*Resolved),
	}
}

// Resolve returns the applicable rate set as of the given date. A zero
// asOf means today. Results are cached per calendar date and must be
// treated as read-only by callers.
func (r *Repository) Resolve(ctx context.Context, asOf time.Time) (*Resolved, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	key := asOf.Format("2006-01-02")

	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	resolved, err := r.resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = resolved
	r.mu.Unlock()
	return resolved, nil
}

func (r *Repository) resolve(ctx context.Context, asOf time.Time) (*Resolved, error) {
	bands, err := r.source.TaxBands(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving tax bands: %w", err)
	}
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].LowerLimit.LessThan(bands[j].LowerLimit)
	})

	reliefs, err := r.source.Reliefs(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving reliefs: %w", err)
	}
	latest := make(map[domain.ReliefType]domain.Relief)
	for _, rel := range reliefs {
		cur, ok := latest[rel.Type]
		if !ok || rel.EffectiveDate.After(cur.EffectiveDate) {
			latest[rel.Type] = rel
		}
	}

	tiers, err := r.source.NSSFRates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving nssf rates: %w", err)
	}
	sort.SliceStable(tiers, func(i, j int) bool {
		if tiers[i].Tier != tiers[j].Tier {
			return tiers[i].Tier < tiers[j].Tier
		}
		return tiers[i].LowerLimit.LessThan(tiers[j].LowerLimit)
	})

	shifs, err := r.source.SHIFRates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving shif rates: %w", err)
	}
	var shif *domain.SHIFRate
	for i := range shifs {
		if shif == nil || shifs[i].EffectiveDate.After(shif.EffectiveDate) {
			shif = &shifs[i]
		}
	}

	levies, err := r.source.HousingLevyRates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving housing levy rates: %w", err)
	}
	var levy *domain.HousingLevyRate
	for i := range levies {
		if levy == nil || levies[i].EffectiveDate.After(levy.EffectiveDate) {
			levy = &levies[i]
		}
	}

	return &Resolved{
		AsOf:        asOf,
		TaxBands:    bands,
		Reliefs:     latest,
		NSSFTiers:   tiers,
		SHIF:        shif,
		HousingLevy: levy,
	}, nil
}
