package shipment

import (
	"errors"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a Party was not created through
// the NewParty factory method.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party identifies one end of a shipment: a named location with a free-text
// address. The address is carried verbatim into the document's location
// segments; no structure is imposed on it here.
type Party struct { //nolint:recvcheck //using for validation
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewParty creates a validated Party. The name is required; the address may
// be empty, in which case no location detail is emitted for this party.
func NewParty(name, address string) (Party, error) {
	party := Party{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := party.setName(name); err != nil {
		return Party{}, err
	}

	return party, nil
}

// Validate ensures the party was created through the constructor.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// Name returns the company or location name.
func (p Party) Name() string {
	return p.name
}

// Address returns the free-text address, possibly empty.
func (p Party) Address() string {
	return p.address
}

func (p *Party) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("party name")
	}

	p.name = name
	return nil
}
