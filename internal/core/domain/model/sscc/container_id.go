package sscc

import (
	"errors"
	"fmt"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrContainerIDIsNotConstructed is returned when a ContainerID was not
// created through the NewContainerID factory method.
var ErrContainerIDIsNotConstructed = errors.New("ContainerID must be created via NewContainerID constructor")

// ContainerID is an immutable value object holding the four fields of a
// serial shipping container code: extension digit, company prefix, serial
// reference, and check digit. With the canonical 7-digit prefix and 9-digit
// serial the rendered identifier is the 18-digit GS1 SSCC-18 form; other
// prefix/serial widths are accepted.
//
// Invariant: the check digit is always recomputable from the other three
// fields via the weighted mod-10 algorithm (see CheckDigit).
type ContainerID struct { //nolint:recvcheck //using for validation
	extensionDigit  string
	companyPrefix   string
	serialReference string
	checkDigit      string

	guard guard.ConstructorGuard
}

// NewContainerID creates a validated ContainerID from its four fields.
// All fields must be non-empty digit strings; the extension digit and check
// digit must be exactly one digit. The check digit is stored as given, not
// recomputed; use IsValid to verify it.
func NewContainerID(extensionDigit, companyPrefix, serialReference, checkDigit string) (ContainerID, error) {
	id := ContainerID{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.setExtensionDigit(extensionDigit),
		id.setCompanyPrefix(companyPrefix),
		id.setSerialReference(serialReference),
		id.setCheckDigit(checkDigit),
	); err != nil {
		return ContainerID{}, err
	}

	return id, nil
}

// Validate ensures the identifier was created through the constructor.
func (c ContainerID) Validate() error {
	return c.guard.Validate(ErrContainerIDIsNotConstructed)
}

// ExtensionDigit returns the single extension digit.
func (c ContainerID) ExtensionDigit() string {
	return c.extensionDigit
}

// CompanyPrefix returns the company prefix field.
func (c ContainerID) CompanyPrefix() string {
	return c.companyPrefix
}

// SerialReference returns the zero-padded serial reference field.
func (c ContainerID) SerialReference() string {
	return c.serialReference
}

// CheckDigit returns the stored check digit.
func (c ContainerID) CheckDigit() string {
	return c.checkDigit
}

// String renders the full identifier: extension, prefix, serial and check
// digit concatenated without separators.
func (c ContainerID) String() string {
	return c.extensionDigit + c.companyPrefix + c.serialReference + c.checkDigit
}

// IsValid recomputes the check digit from the identifier's own fields and
// compares it to the stored one. It never mutates anything.
func (c ContainerID) IsValid() bool {
	computed, err := CheckDigit(c.extensionDigit, c.companyPrefix, c.serialReference)
	if err != nil {
		return false
	}
	return computed == c.checkDigit
}

// IsEqual compares two identifiers field by field.
func (c ContainerID) IsEqual(other ContainerID) bool {
	return c.extensionDigit == other.extensionDigit &&
		c.companyPrefix == other.companyPrefix &&
		c.serialReference == other.serialReference &&
		c.checkDigit == other.checkDigit
}

func (c *ContainerID) setExtensionDigit(extensionDigit string) error {
	if err := validateDigitString("extension digit", extensionDigit, 1, 1); err != nil {
		return err
	}

	c.extensionDigit = extensionDigit
	return nil
}

func (c *ContainerID) setCompanyPrefix(companyPrefix string) error {
	if err := validateDigitString("company prefix", companyPrefix, MinPrefixLength, MaxPrefixLength); err != nil {
		return err
	}

	c.companyPrefix = companyPrefix
	return nil
}

func (c *ContainerID) setSerialReference(serialReference string) error {
	if err := validateDigitString("serial reference", serialReference, 1, 0); err != nil {
		return err
	}

	c.serialReference = serialReference
	return nil
}

func (c *ContainerID) setCheckDigit(checkDigit string) error {
	if err := validateDigitString("check digit", checkDigit, 1, 1); err != nil {
		return err
	}

	c.checkDigit = checkDigit
	return nil
}

// validateDigitString checks that s contains only digits and that its length
// is within [minLen, maxLen]. A maxLen of 0 means unbounded.
func validateDigitString(paramName, s string, minLen, maxLen int) error {
	if s == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(s) < minLen || (maxLen > 0 && len(s) > maxLen) {
		return errs.NewValueIsOutOfRangeError(paramName+" length", len(s), minLen, maxLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return errs.NewValueIsInvalidErrorWithCause(paramName,
				fmt.Errorf("%q is not a digit string", s))
		}
	}
	return nil
}
