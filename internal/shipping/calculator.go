// Package shipping computes weight-based shipping fees over individual
// physical units and builds the post-fulfillment manifest.
package shipping

import "github.com/shopspring/decimal"

// Config carries the fee parameters so calculators can run with varied
// rates under test and be driven from configuration in deployments.
type Config struct {
	BaseFee           decimal.Decimal
	WeightRatePerGram decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		BaseFee:           decimal.RequireFromString("10.0"),
		WeightRatePerGram: decimal.RequireFromString("0.02"),
	}
}

// Unit is one physical instance of a shippable product. A cart line of
// quantity 3 contributes 3 units; the fee model is per unit weight, never
// per line.
type Unit struct {
	ProductName string
	WeightGrams decimal.Decimal
}

// ManifestEntry lists one shipped unit.
type ManifestEntry struct {
	ProductName string
	WeightGrams decimal.Decimal
}

// Manifest is the post-fulfillment listing of shipped units. It is a pure
// reporting artifact; rendering it is the caller's side effect.
type Manifest struct {
	Entries       []ManifestEntry
	TotalWeightKg decimal.Decimal
}

func (m Manifest) IsEmpty() bool {
	return len(m.Entries) == 0
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Fee is zero for an empty unit set, otherwise base fee plus total weight
// times the per-gram rate, rounded half-up at the cent boundary.
func (c *Calculator) Fee(units []Unit) decimal.Decimal {
	if len(units) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, u := range units {
		total = total.Add(u.WeightGrams)
	}

	return c.cfg.BaseFee.Add(total.Mul(c.cfg.WeightRatePerGram)).Round(2)
}

// BuildManifest lists every unit with its weight and the aggregate weight
// in kilograms.
func (c *Calculator) BuildManifest(units []Unit) Manifest {
	if len(units) == 0 {
		return Manifest{TotalWeightKg: decimal.Zero}
	}

	entries := make([]ManifestEntry, 0, len(units))
	total := decimal.Zero
	for _, u := range units {
		entries = append(entries, ManifestEntry{ProductName: u.ProductName, WeightGrams: u.WeightGrams})
		total = total.Add(u.WeightGrams)
	}

	return Manifest{
		Entries:       entries,
		TotalWeightKg: total.Div(decimal.NewFromInt(1000)),
	}
}
