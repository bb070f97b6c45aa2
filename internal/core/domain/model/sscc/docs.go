// Package sscc implements serial shipping container codes: the ContainerID
// value object, the GS1 weighted mod-10 check digit, and a stateful Generator
// that assigns sequential identifiers to packed cartons.
package sscc
