// Package kernel contains shared value objects used across the domain model:
// UUID for identifying document-generation runs and Weight for exact
// decimal weight arithmetic.
package kernel
