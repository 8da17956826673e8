package rates

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"kenpay/internal/domain"
)

// File is the on-disk shape of a statutory rate configuration.
type File struct {
	TaxBands         []domain.TaxBand         `yaml:"paye_tax_bands"`
	Reliefs          []domain.Relief          `yaml:"tax_reliefs"`
	NSSFRates        []domain.NSSFRate        `yaml:"nssf_rates"`
	SHIFRates        []domain.SHIFRate        `yaml:"shif_rates"`
	HousingLevyRates []domain.HousingLevyRate `yaml:"housing_levy_rates"`
}

// LoadFile reads and validates a YAML rate configuration, returning it as
// an in-memory source.
func LoadFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rate file %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("rate file %s: %w", path, err)
	}

	return &StaticSource{
		Bands:       f.TaxBands,
		ReliefList:  f.Reliefs,
		NSSFTiers:   f.NSSFRates,
		SHIFList:    f.SHIFRates,
		HousingList: f.HousingLevyRates,
	}, nil
}

// Validate checks the structural invariants of the rate tables: each
// active band generation is ordered, non-overlapping and topped by exactly
// one unbounded band; tiers and rates are non-negative.
func (f *File) Validate() error {
	if err := validateBandGenerations(f.TaxBands); err != nil {
		return err
	}
	for i, r := range f.Reliefs {
		switch r.Type {
		case domain.ReliefPersonal, domain.ReliefInsurance, domain.ReliefMortgage,
			domain.ReliefPension, domain.ReliefMedicalFund:
		default:
			return fmt.Errorf("relief %d: unknown relief type %q", i, r.Type)
		}
		if r.Type == domain.ReliefPersonal && r.Amount == nil {
			return fmt.Errorf("relief %d: personal relief requires an amount", i)
		}
	}
	for i, t := range f.NSSFRates {
		if t.Tier < 1 {
			return fmt.Errorf("nssf rate %d: tier must be >= 1", i)
		}
		if t.Rate.IsNegative() {
			return fmt.Errorf("nssf rate %d: contribution rate must not be negative", i)
		}
		if t.UpperLimit != nil && t.UpperLimit.LessThanOrEqual(t.LowerLimit) {
			return fmt.Errorf("nssf rate %d: upper limit must exceed lower limit", i)
		}
	}
	for i, s := range f.SHIFRates {
		if s.Rate.IsNegative() || s.MinimumContribution.IsNegative() {
			return fmt.Errorf("shif rate %d: rate and minimum must not be negative", i)
		}
	}
	for i, h := range f.HousingLevyRates {
		if h.EmployeeRate.IsNegative() || h.EmployerRate.IsNegative() {
			return fmt.Errorf("housing levy rate %d: rates must not be negative", i)
		}
	}
	return nil
}

func validateBandGenerations(bands []domain.TaxBand) error {
	generations := make(map[time.Time][]domain.TaxBand)
	for _, b := range bands {
		if !b.Active {
			continue
		}
		if b.Rate.IsNegative() {
			return fmt.Errorf("tax band starting at %s: rate must not be negative", b.LowerLimit)
		}
		generations[b.EffectiveDate] = append(generations[b.EffectiveDate], b)
	}
	for effective, gen := range generations {
		sort.SliceStable(gen, func(i, j int) bool {
			return gen[i].LowerLimit.LessThan(gen[j].LowerLimit)
		})
		unbounded := 0
		for i, b := range gen {
			if b.Unbounded() {
				unbounded++
				if i != len(gen)-1 {
					return fmt.Errorf("tax bands effective %s: unbounded band is not the top band", effective.Format("2006-01-02"))
				}
				continue
			}
			if b.UpperLimit.LessThanOrEqual(b.LowerLimit) {
				return fmt.Errorf("tax bands effective %s: band starting at %s has upper limit below lower limit", effective.Format("2006-01-02"), b.LowerLimit)
			}
			if i+1 < len(gen) && gen[i+1].LowerLimit.LessThanOrEqual(*b.UpperLimit) {
				return fmt.Errorf("tax bands effective %s: band starting at %s overlaps the band below", effective.Format("2006-01-02"), gen[i+1].LowerLimit)
			}
		}
		if unbounded != 1 {
			return fmt.Errorf("tax bands effective %s: expected exactly one unbounded top band, found %d", effective.Format("2006-01-02"), unbounded)
		}
	}
	return nil
}
