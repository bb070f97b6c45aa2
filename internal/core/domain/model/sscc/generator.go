package sscc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSerialExhausted is returned by Next and Peek when the serial counter no
// longer fits the configured digit width. The counter is left unmodified so a
// caller can recover with a wider configuration.
var ErrSerialExhausted = errors.New("serial number exceeds configured digit width")

// Generator produces sequential, checksum-verified container identifiers from
// a fixed configuration and a strictly increasing serial counter.
//
// Identifiers generated within one run are unique because the counter is
// never reused; Reset deliberately rewinds it and is intended for tests and
// explicit operator action only.
//
// A Generator holds a mutable counter advanced by Next. It is not safe to
// share one instance across concurrent document-generation runs without
// external locking.
//
// Example:
//
//	gen, _ := sscc.NewGenerator(sscc.DefaultConfig())
//	id, _ := gen.Next()
//	fmt.Println(id.String()) // 000614141000000012
type Generator struct {
	config        Config
	currentSerial int
}

// NewGenerator creates a Generator whose counter starts at the configured
// serial start.
func NewGenerator(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		config:        config,
		currentSerial: config.SerialStart(),
	}, nil
}

// Next formats the current serial, computes the check digit, and returns the
// identifier, incrementing the counter. When the serial no longer fits the
// configured width it fails with ErrSerialExhausted before emitting anything,
// leaving the counter unmodified.
func (g *Generator) Next() (ContainerID, error) {
	id, err := g.build()
	if err != nil {
		return ContainerID{}, err
	}

	g.currentSerial++
	return id, nil
}

// Peek returns the identifier Next would produce without advancing the
// counter. Repeated calls return the same identifier.
func (g *Generator) Peek() (ContainerID, error) {
	return g.build()
}

// NextBatch generates count identifiers in sequence.
func (g *Generator) NextBatch(count int) ([]ContainerID, error) {
	ids := make([]ContainerID, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Next()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Validate recomputes the identifier's check digit from its own fields and
// compares it to the stored one. It is a static check: generator state is
// never read or mutated.
func (g *Generator) Validate(id ContainerID) bool {
	return id.IsValid()
}

// Reset rewinds the counter to the originally configured serial start.
func (g *Generator) Reset() {
	g.currentSerial = g.config.SerialStart()
}

// ResetTo rewinds the counter to the given serial.
func (g *Generator) ResetTo(serial int) error {
	if serial < 0 {
		return fmt.Errorf("serial %d is negative", serial)
	}

	g.currentSerial = serial
	return nil
}

// CurrentSerial returns the serial the next identifier will carry.
func (g *Generator) CurrentSerial() int {
	return g.currentSerial
}

// Config returns the generator's fixed configuration.
func (g *Generator) Config() Config {
	return g.config
}

func (g *Generator) build() (ContainerID, error) {
	raw := strconv.Itoa(g.currentSerial)
	if len(raw) > g.config.SerialWidth() {
		return ContainerID{}, fmt.Errorf("%w: serial %d does not fit %d digits",
			ErrSerialExhausted, g.currentSerial, g.config.SerialWidth())
	}

	serial := fmt.Sprintf("%0*d", g.config.SerialWidth(), g.currentSerial)

	check, err := CheckDigit(g.config.ExtensionDigit(), g.config.CompanyPrefix(), serial)
	if err != nil {
		return ContainerID{}, err
	}

	return NewContainerID(g.config.ExtensionDigit(), g.config.CompanyPrefix(), serial, check)
}
