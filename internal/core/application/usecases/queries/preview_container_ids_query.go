// Package queries contains read operations for retrieving system state.
// Queries never mutate anything: previewing identifiers works on a scratch
// generator so the live serial counter is untouched.
package queries

import (
	"errors"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var ErrPreviewContainerIDsQueryIsNotConstructed = errors.New(
	"PreviewContainerIDsQuery must be created via NewPreviewContainerIDsQuery constructor",
)

// MaxPreviewCount bounds one preview request.
const MaxPreviewCount = 1000

// PreviewContainerIDsQuery asks for the next count container identifiers the
// live generator would emit, without advancing it.
type PreviewContainerIDsQuery struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewPreviewContainerIDsQuery creates a query for the next count identifiers.
func NewPreviewContainerIDsQuery(count int) (PreviewContainerIDsQuery, error) {
	query := PreviewContainerIDsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCount(count); err != nil {
		return PreviewContainerIDsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q PreviewContainerIDsQuery) Validate() error {
	return q.guard.Validate(ErrPreviewContainerIDsQueryIsNotConstructed)
}

// Count returns how many identifiers to preview.
func (q PreviewContainerIDsQuery) Count() int {
	return q.count
}

func (q *PreviewContainerIDsQuery) setCount(count int) error {
	if count < 1 || count > MaxPreviewCount {
		return errs.NewValueIsOutOfRangeError("count", count, 1, MaxPreviewCount)
	}

	q.count = count
	return nil
}

// PreviewContainerIDsQueryResponse is the read model of one preview: rendered
// identifiers plus the serial the live generator still sits on.
type PreviewContainerIDsQueryResponse struct {
	ContainerIDs  []string
	CurrentSerial int
}
