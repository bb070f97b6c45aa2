// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the shipping context.
//
// The package includes:
//   - CartonPacker: splits an order's line items into cartons under unit and
//     weight caps
//   - PackingConfig: the validated limits the packer operates under
//
// Domain services hold no persistent state of their own; all mutable state
// lives in the aggregates they operate on.
package services
