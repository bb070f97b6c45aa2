package sscc

import (
	"errors"
	"fmt"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrConfigIsNotConstructed is returned when a Config was not created through
// the NewConfig factory method.
var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")

const (
	// MinPrefixLength is the shortest company prefix GS1 assigns.
	MinPrefixLength = 7
	// MaxPrefixLength is the longest company prefix GS1 assigns.
	MaxPrefixLength = 10

	// DefaultCompanyPrefix is the GS1 documentation example prefix, used when
	// no real prefix is configured.
	DefaultCompanyPrefix = "0614141"
	// DefaultExtensionDigit is the default extension digit.
	DefaultExtensionDigit = "0"
	// DefaultSerialStart is the default first serial number.
	DefaultSerialStart = 1
	// DefaultSerialWidth pairs with a 7-digit prefix to yield 18-digit
	// identifiers, the interoperable SSCC-18 shape.
	DefaultSerialWidth = 9
)

// Config holds the fixed fields of identifier generation: company prefix,
// extension digit, the serial counter's starting value, and the zero-padded
// serial width. It is immutable for the lifetime of a Generator.
type Config struct { //nolint:recvcheck //using for validation
	companyPrefix  string
	extensionDigit string
	serialStart    int
	serialWidth    int

	guard guard.ConstructorGuard
}

// NewConfig creates a validated generator configuration.
// Misconfiguration (malformed prefix or extension, negative start,
// non-positive width) is rejected here, before any generation begins.
func NewConfig(companyPrefix, extensionDigit string, serialStart, serialWidth int) (Config, error) {
	config := Config{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		config.setCompanyPrefix(companyPrefix),
		config.setExtensionDigit(extensionDigit),
		config.setSerialStart(serialStart),
		config.setSerialWidth(serialWidth),
	); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DefaultConfig returns the canonical configuration: example 7-digit prefix,
// extension "0", serial starting at 1, 9-digit serial width.
func DefaultConfig() Config {
	config, err := NewConfig(DefaultCompanyPrefix, DefaultExtensionDigit, DefaultSerialStart, DefaultSerialWidth)
	if err != nil {
		// The defaults are constants; this cannot happen.
		panic(err)
	}
	return config
}

// Validate ensures the config was created through the constructor.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// CompanyPrefix returns the configured company prefix.
func (c Config) CompanyPrefix() string {
	return c.companyPrefix
}

// ExtensionDigit returns the configured extension digit.
func (c Config) ExtensionDigit() string {
	return c.extensionDigit
}

// SerialStart returns the serial counter's starting value.
func (c Config) SerialStart() int {
	return c.serialStart
}

// SerialWidth returns the zero-padded width of the serial reference field.
func (c Config) SerialWidth() int {
	return c.serialWidth
}

func (c *Config) setCompanyPrefix(companyPrefix string) error {
	if err := validateDigitString("company prefix", companyPrefix, MinPrefixLength, MaxPrefixLength); err != nil {
		return err
	}

	c.companyPrefix = companyPrefix
	return nil
}

func (c *Config) setExtensionDigit(extensionDigit string) error {
	if err := validateDigitString("extension digit", extensionDigit, 1, 1); err != nil {
		return err
	}

	c.extensionDigit = extensionDigit
	return nil
}

func (c *Config) setSerialStart(serialStart int) error {
	if serialStart < 0 {
		return errs.NewValueIsInvalidErrorWithCause("serial start",
			fmt.Errorf("%d is negative", serialStart))
	}

	c.serialStart = serialStart
	return nil
}

func (c *Config) setSerialWidth(serialWidth int) error {
	if serialWidth < 1 {
		return errs.NewValueIsInvalidErrorWithCause("serial width",
			fmt.Errorf("%d is not at least 1", serialWidth))
	}

	c.serialWidth = serialWidth
	return nil
}
