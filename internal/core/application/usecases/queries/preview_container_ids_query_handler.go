package queries

import (
	"context"

	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
)

// PreviewContainerIDsQueryHandler renders upcoming container identifiers.
// It clones the live generator's configuration and position into a scratch
// generator for each query, so previewing never advances the real counter.
type PreviewContainerIDsQueryHandler struct {
	generator *sscc.Generator
}

// NewPreviewContainerIDsQueryHandler creates a handler reading from the given
// live generator.
func NewPreviewContainerIDsQueryHandler(generator *sscc.Generator) (PreviewContainerIDsQueryHandler, error) {
	if generator == nil {
		return PreviewContainerIDsQueryHandler{}, errs.NewValueIsRequiredError("generator")
	}

	return PreviewContainerIDsQueryHandler{generator: generator}, nil
}

// Handle produces the next count identifiers the live generator would emit.
func (h PreviewContainerIDsQueryHandler) Handle(
	ctx context.Context, query PreviewContainerIDsQuery,
) (*PreviewContainerIDsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scratch, err := sscc.NewGenerator(h.generator.Config())
	if err != nil {
		return nil, err
	}
	if err := scratch.ResetTo(h.generator.CurrentSerial()); err != nil {
		return nil, err
	}

	ids, err := scratch.NextBatch(query.Count())
	if err != nil {
		return nil, err
	}

	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		rendered = append(rendered, id.String())
	}

	return &PreviewContainerIDsQueryResponse{
		ContainerIDs:  rendered,
		CurrentSerial: h.generator.CurrentSerial(),
	}, nil
}
