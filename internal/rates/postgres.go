package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
)

// PostgresSource reads rate tables from the payroll database. Numeric
// columns are selected as text and parsed into decimals so no precision
// is lost in transit.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a source over an existing connection pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Connect opens a pool for the given DSN and wraps it as a source.
func Connect(ctx context.Context, dsn string) (*PostgresSource, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to rates database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pinging rates database: %w", err)
	}
	return NewPostgresSource(pool), pool.Close, nil
}

func parseDec(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func parseDecPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (p *PostgresSource) TaxBands(ctx context.Context, asOf time.Time) ([]domain.TaxBand, error) {
	rows, err := p.pool.Query(ctx, `
    SELECT lower_limit::text, upper_limit::text, tax_rate::text, effective_date
    FROM paye_tax_bands
    WHERE is_active AND effective_date <= $1
    ORDER BY lower_limit`, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying tax bands: %w", err)
	}
	defer rows.Close()

	var out []domain.TaxBand
	for rows.Next() {
		var (
			lower, rate string
			upper       *string
			effective   time.Time
		)
		if err := rows.Scan(&lower, &upper, &rate, &effective); err != nil {
			return nil, fmt.Errorf("scanning tax band: %w", err)
		}
		b := domain.TaxBand{EffectiveDate: effective, Active: true}
		if b.LowerLimit, err = parseDec(lower); err != nil {
			return nil, fmt.Errorf("tax band lower limit: %w", err)
		}
		if b.UpperLimit, err = parseDecPtr(upper); err != nil {
			return nil, fmt.Errorf("tax band upper limit: %w", err)
		}
		if b.Rate, err = parseDec(rate); err != nil {
			return nil, fmt.Errorf("tax band rate: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (p *PostgresSource) Reliefs(ctx context.Context, asOf time.Time) ([]domain.Relief, error) {
	rows, err := p.pool.Query(ctx, `
    SELECT relief_type, amount::text, rate::text, maximum_amount::text, effective_date
    FROM tax_reliefs
    WHERE is_active AND effective_date <= $1
    ORDER BY relief_type, effective_date DESC`, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying tax reliefs: %w", err)
	}
	defer rows.Close()

	var out []domain.Relief
	for rows.Next() {
		var (
			reliefType          string
			amount, rate, maxAm *string
			effective           time.Time
		)
		if err := rows.Scan(&reliefType, &amount, &rate, &maxAm, &effective); err != nil {
			return nil, fmt.Errorf("scanning tax relief: %w", err)
		}
		r := domain.Relief{Type: domain.ReliefType(reliefType), EffectiveDate: effective, Active: true}
		if r.Amount, err = parseDecPtr(amount); err != nil {
			return nil, fmt.Errorf("relief amount: %w", err)
		}
		if r.Rate, err = parseDecPtr(rate); err != nil {
			return nil, fmt.Errorf("relief rate: %w", err)
		}
		if r.MaximumAmount, err = parseDecPtr(maxAm); err != nil {
			return nil, fmt.Errorf("relief maximum: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresSource) NSSFRates(ctx context.Context, asOf time.Time) ([]domain.NSSFRate, error) {
	rows, err := p.pool.Query(ctx, `
    SELECT tier, lower_limit::text, upper_limit::text, contribution_rate::text, effective_date
    FROM nssf_rates
    WHERE is_active AND effective_date <= $1
    ORDER BY tier, lower_limit`, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying nssf rates: %w", err)
	}
	defer rows.Close()

	var out []domain.NSSFRate
	for rows.Next() {
		var (
			tier        int
			lower, rate string
			upper       *string
			effective   time.Time
		)
		if err := rows.Scan(&tier, &lower, &upper, &rate, &effective); err != nil {
			return nil, fmt.Errorf("scanning nssf rate: %w", err)
		}
		r := domain.NSSFRate{Tier: tier, EffectiveDate: effective, Active: true}
		if r.LowerLimit, err = parseDec(lower); err != nil {
			return nil, fmt.Errorf("nssf lower limit: %w", err)
		}
		if r.UpperLimit, err = parseDecPtr(upper); err != nil {
			return nil, fmt.Errorf("nssf upper limit: %w", err)
		}
		if r.Rate, err = parseDec(rate); err != nil {
			return nil, fmt.Errorf("nssf rate: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresSource) SHIFRates(ctx context.Context, asOf time.Time) ([]domain.SHIFRate, error) {
	rows, err := p.pool.Query(ctx, `
    SELECT contribution_rate::text, minimum_contribution::text, effective_date
    FROM shif_rates
    WHERE is_active AND effective_date <= $1
    ORDER BY effective_date DESC`, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying shif rates: %w", err)
	}
	defer rows.Close()

	var out []domain.SHIFRate
	for rows.Next() {
		var (
			rate, minimum string
			effective     time.Time
		)
		if err := rows.Scan(&rate, &minimum, &effective); err != nil {
			return nil, fmt.Errorf("scanning shif rate: %w", err)
		}
		r := domain.SHIFRate{EffectiveDate: effective, Active: true}
		if r.Rate, err = parseDec(rate); err != nil {
			return nil, fmt.Errorf("shif rate: %w", err)
		}
		if r.MinimumContribution, err = parseDec(minimum); err != nil {
			return nil, fmt.Errorf("shif minimum: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresSource) HousingLevyRates(ctx context.Context, asOf time.Time) ([]domain.HousingLevyRate, error) {
	rows, err := p.pool.Query(ctx, `
    SELECT employee_rate::text, employer_rate::text, effective_date
    FROM housing_levy_rates
    WHERE is_active AND effective_date <= $1
    ORDER BY effective_date DESC`, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying housing levy rates: %w", err)
	}
	defer rows.Close()

	var out []domain.HousingLevyRate
	for rows.Next() {
		var (
			empRate, erRate string
			effective       time.Time
		)
		if err := rows.Scan(&empRate, &erRate, &effective); err != nil {
			return nil, fmt.Errorf("scanning housing levy rate: %w", err)
		}
		r := domain.HousingLevyRate{EffectiveDate: effective, Active: true}
		if r.EmployeeRate, err = parseDec(empRate); err != nil {
			return nil, fmt.Errorf("housing levy employee rate: %w", err)
		}
		if r.EmployerRate, err = parseDec(erRate); err != nil {
			return nil, fmt.Errorf("housing levy employer rate: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
