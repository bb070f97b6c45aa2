package cmd

import (
	"fmt"
	"log/slog"

	httpin "shipnotice/internal/adapters/in/http"
	"shipnotice/internal/adapters/in/order"
	"shipnotice/internal/adapters/out/filestore"
	"shipnotice/internal/adapters/out/x12"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"
	"shipnotice/internal/jobs"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// The identifier generator is shared by every entry point so serials stay
// strictly sequential across HTTP requests, sweeps and CLI runs.
type CompositionRoot struct {
	config    Config
	parser    *order.Parser
	generator *sscc.Generator
	logger    *slog.Logger

	assembler      *x12.Assembler
	generateNotice *commands.GenerateShipNoticeCommandHandler
	previewIDs     queries.PreviewContainerIDsQueryHandler
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	parser, err := order.NewParser()
	if err != nil {
		return nil, fmt.Errorf("create order parser: %w", err)
	}

	ssccConfig, err := sscc.NewConfig(
		config.SSCCCompanyPrefix,
		config.SSCCExtensionDigit,
		config.SSCCSerialStart,
		config.SSCCSerialWidth,
	)
	if err != nil {
		return nil, fmt.Errorf("create identifier config: %w", err)
	}
	generator, err := sscc.NewGenerator(ssccConfig)
	if err != nil {
		return nil, fmt.Errorf("create identifier generator: %w", err)
	}

	var maxWeight *kernel.Weight
	if config.MaxWeightPerCarton > 0 {
		weight, err := kernel.NewWeightFromFloat(config.MaxWeightPerCarton)
		if err != nil {
			return nil, fmt.Errorf("create carton weight cap: %w", err)
		}
		maxWeight = &weight
	}
	packingConfig, err := services.NewPackingConfig(
		config.MaxUnitsPerCarton, maxWeight, config.SingleSKUCartons, shipment.Dimensions{}, "")
	if err != nil {
		return nil, fmt.Errorf("create packing config: %w", err)
	}

	store, err := filestore.NewDocumentStore(config.OutboxDir)
	if err != nil {
		return nil, fmt.Errorf("create document store: %w", err)
	}

	assembler := x12.NewAssembler(config.SegmentTerminator, config.ElementSeparator, config.SubElementSeparator)

	generateNotice, err := commands.NewGenerateShipNoticeCommandHandler(
		packingConfig,
		generator,
		assembler,
		store,
		config.SenderID,
		config.ReceiverID,
	)
	if err != nil {
		return nil, fmt.Errorf("create ship notice handler: %w", err)
	}

	previewIDs, err := queries.NewPreviewContainerIDsQueryHandler(generator)
	if err != nil {
		return nil, fmt.Errorf("create preview handler: %w", err)
	}

	return &CompositionRoot{
		config:         config,
		parser:         parser,
		generator:      generator,
		logger:         logger,
		assembler:      assembler,
		generateNotice: generateNotice,
		previewIDs:     previewIDs,
	}, nil
}

func (c *CompositionRoot) Assembler() *x12.Assembler {
	return c.assembler
}

func (c *CompositionRoot) OrderParser() *order.Parser {
	return c.parser
}

func (c *CompositionRoot) GenerateShipNoticeCommandHandler() *commands.GenerateShipNoticeCommandHandler {
	return c.generateNotice
}

func (c *CompositionRoot) PreviewContainerIDsQueryHandler() queries.PreviewContainerIDsQueryHandler {
	return c.previewIDs
}

func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(c.parser, c.generateNotice, c.previewIDs)
}

func (c *CompositionRoot) NoticeSweepJob() *jobs.NoticeSweepJob {
	return jobs.NewNoticeSweepJob(
		c.parser,
		c.generateNotice,
		c.config.InboxDir,
		c.config.ProcessedDir,
		c.config.FailedDir,
		c.config.SweepSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.NoticeSweepJob())
}
