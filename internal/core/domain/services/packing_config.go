package services

import (
	"errors"
	"fmt"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrPackingConfigIsNotConstructed is returned when a PackingConfig was not
// created through the NewPackingConfig factory method.
var ErrPackingConfigIsNotConstructed = errors.New("PackingConfig must be created via NewPackingConfig constructor")

const (
	// DefaultCartonIDPrefix is the prefix used for carton labels when none is configured.
	DefaultCartonIDPrefix = "CTN"

	// CartonIDPadding is the zero-padding width of the numeric part of a carton label.
	CartonIDPadding = 4
)

// PackingConfig is an immutable value object holding the limits the packer
// operates under. A pathological configuration (unit cap or weight cap that
// admits nothing) is rejected here, before any packing loop runs.
type PackingConfig struct { //nolint:recvcheck //using for validation
	maxUnitsPerCarton  int
	maxWeightPerCarton *kernel.Weight
	singleSKUCartons   bool
	defaultDimensions  shipment.Dimensions
	cartonIDPrefix     string

	guard guard.ConstructorGuard
}

// NewPackingConfig creates a validated PackingConfig.
// maxWeightPerCarton is optional; when set it must be strictly positive.
// An empty cartonIDPrefix falls back to DefaultCartonIDPrefix.
func NewPackingConfig(
	maxUnitsPerCarton int,
	maxWeightPerCarton *kernel.Weight,
	singleSKUCartons bool,
	defaultDimensions shipment.Dimensions,
	cartonIDPrefix string,
) (PackingConfig, error) {
	config := PackingConfig{
		singleSKUCartons:  singleSKUCartons,
		defaultDimensions: defaultDimensions,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		config.setMaxUnitsPerCarton(maxUnitsPerCarton),
		config.setMaxWeightPerCarton(maxWeightPerCarton),
		config.setCartonIDPrefix(cartonIDPrefix),
	); err != nil {
		return PackingConfig{}, err
	}

	return config, nil
}

// Validate ensures the PackingConfig instance was properly constructed through NewPackingConfig.
func (c PackingConfig) Validate() error {
	return c.guard.Validate(ErrPackingConfigIsNotConstructed)
}

// MaxUnitsPerCarton returns the per-carton unit cap.
func (c PackingConfig) MaxUnitsPerCarton() int {
	return c.maxUnitsPerCarton
}

// MaxWeightPerCarton returns the optional per-carton weight cap, or nil when
// no weight cap is configured.
func (c PackingConfig) MaxWeightPerCarton() *kernel.Weight {
	return c.maxWeightPerCarton
}

// SingleSKUCartons reports whether the packer groups each SKU into its own
// run of cartons instead of mixing SKUs greedily.
func (c PackingConfig) SingleSKUCartons() bool {
	return c.singleSKUCartons
}

// DefaultDimensions returns the physical dimensions stamped on every packed carton.
func (c PackingConfig) DefaultDimensions() shipment.Dimensions {
	return c.defaultDimensions
}

// CartonID builds the label for the carton at the given 1-based sequence
// position, e.g. "CTN-0001".
func (c PackingConfig) CartonID(sequenceNumber int) string {
	return fmt.Sprintf("%s-%0*d", c.cartonIDPrefix, CartonIDPadding, sequenceNumber)
}

func (c *PackingConfig) setMaxUnitsPerCarton(maxUnitsPerCarton int) error {
	if maxUnitsPerCarton < 1 {
		return errs.NewValueIsOutOfRangeError("max units per carton", maxUnitsPerCarton, 1, "unbounded")
	}

	c.maxUnitsPerCarton = maxUnitsPerCarton
	return nil
}

func (c *PackingConfig) setMaxWeightPerCarton(maxWeightPerCarton *kernel.Weight) error {
	if maxWeightPerCarton != nil && !maxWeightPerCarton.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("max weight per carton",
			fmt.Errorf("%s is not positive", maxWeightPerCarton.Fixed()))
	}

	c.maxWeightPerCarton = maxWeightPerCarton
	return nil
}

func (c *PackingConfig) setCartonIDPrefix(cartonIDPrefix string) error {
	if cartonIDPrefix == "" {
		cartonIDPrefix = DefaultCartonIDPrefix
	}

	c.cartonIDPrefix = cartonIDPrefix
	return nil
}
