package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"shipnotice/cmd"
	"shipnotice/internal/core/application/usecases/queries"
)

var rootCmd = &cobra.Command{
	Use:   "shipnotice",
	Short: "Generates EDI X12 856 ship notice documents from order files",
	Long: `shipnotice packs order line items into cartons, assigns each carton
an SSCC-18 container identifier and renders the shipment as an EDI X12 856
advance ship notice document.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		configs := getConfigs()
		root := newCompositionRoot(configs)
		startWebServer(root, configs.HTTPPort)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Watch the inbox directory and generate a document per order file",
	Run: func(_ *cobra.Command, _ []string) {
		configs := getConfigs()
		root := newCompositionRoot(configs)

		jobManager := root.JobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()

		fmt.Printf("Sweeping %s; press Ctrl+C to stop\n", configs.InboxDir)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
	},
}

var processCmd = &cobra.Command{
	Use:   "process [order file]",
	Short: "Generate a document for a single order file and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		configs := getConfigs()
		root := newCompositionRoot(configs)

		payload, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read order file: %v", err)
		}

		request, err := root.OrderParser().Parse(payload)
		if err != nil {
			log.Fatalf("Invalid order: %v", err)
		}
		command, err := request.ToCommand()
		if err != nil {
			log.Fatalf("Invalid order: %v", err)
		}

		response, err := root.GenerateShipNoticeCommandHandler().Handle(context.Background(), command)
		if err != nil {
			log.Fatalf("Failed to generate ship notice: %v", err)
		}

		fmt.Println(root.Assembler().FormatForDisplay(response.Document))
		fmt.Println()
		fmt.Printf("Shipment:       %s\n", response.ShipmentID)
		fmt.Printf("Control number: %s\n", response.ControlNumber)
		fmt.Printf("Segments:       %d\n", response.SegmentCount)
		fmt.Printf("Cartons:        %d (%d units)\n", response.TotalCartons, response.TotalUnits)
		fmt.Printf("Written to:     %s\n", response.DocumentPath)
	},
}

var (
	previewCount  int
	flagPort      string
	flagInboxDir  string
	flagOutboxDir string
	flagSchedule  string
)

var previewSSCCCmd = &cobra.Command{
	Use:   "preview-sscc",
	Short: "Preview the container identifiers the next cartons would receive",
	Run: func(_ *cobra.Command, _ []string) {
		configs := getConfigs()
		root := newCompositionRoot(configs)

		query, err := queries.NewPreviewContainerIDsQuery(previewCount)
		if err != nil {
			log.Fatalf("Invalid preview request: %v", err)
		}
		response, err := root.PreviewContainerIDsQueryHandler().Handle(context.Background(), query)
		if err != nil {
			log.Fatalf("Failed to preview identifiers: %v", err)
		}

		for _, id := range response.ContainerIDs {
			fmt.Println(id)
		}
	},
}

func init() {
	previewSSCCCmd.Flags().IntVar(&previewCount, "count", 1, "number of identifiers to preview")
	serveCmd.Flags().StringVar(&flagPort, "port", "", "HTTP port (overrides HTTP_PORT)")
	sweepCmd.Flags().StringVar(&flagInboxDir, "inbox", "", "inbox directory (overrides INBOX_DIR)")
	sweepCmd.Flags().StringVar(&flagSchedule, "schedule", "", "cron schedule (overrides SWEEP_SCHEDULE)")
	for _, c := range []*cobra.Command{serveCmd, sweepCmd, processCmd} {
		c.Flags().StringVar(&flagOutboxDir, "outbox", "", "outbox directory (overrides OUTBOX_DIR)")
	}
	rootCmd.AddCommand(serveCmd, sweepCmd, processCmd, previewSSCCCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCompositionRoot(configs cmd.Config) *cmd.CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}
	return root
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load(".env")

	configs := loadEnvConfig()
	applyFlagOverrides(&configs)
	return configs
}

func loadEnvConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		InboxDir:           envOrDefault("INBOX_DIR", "inbox"),
		OutboxDir:          envOrDefault("OUTBOX_DIR", "outbox"),
		ProcessedDir:       envOrDefault("PROCESSED_DIR", "processed"),
		FailedDir:          envOrDefault("FAILED_DIR", "failed"),
		SweepSchedule:      envOrDefault("SWEEP_SCHEDULE", ""),
		SenderID:           envOrDefault("EDI_SENDER_ID", "SENDER"),
		ReceiverID:         envOrDefault("EDI_RECEIVER_ID", "RECEIVER"),
		SSCCCompanyPrefix:  envOrDefault("SSCC_COMPANY_PREFIX", "0614141"),
		SSCCExtensionDigit: envOrDefault("SSCC_EXTENSION_DIGIT", "0"),
		SSCCSerialStart:    envIntOrDefault("SSCC_SERIAL_START", 1),
		SSCCSerialWidth:    envIntOrDefault("SSCC_SERIAL_WIDTH", 9),
		MaxUnitsPerCarton:  envIntOrDefault("MAX_UNITS_PER_CARTON", 50),
		MaxWeightPerCarton: envFloatOrDefault("MAX_WEIGHT_PER_CARTON", 0),
		SingleSKUCartons:   envBoolOrDefault("SINGLE_SKU_CARTONS", false),

		SegmentTerminator:   envOrDefault("EDI_SEGMENT_TERMINATOR", ""),
		ElementSeparator:    envOrDefault("EDI_ELEMENT_SEPARATOR", ""),
		SubElementSeparator: envOrDefault("EDI_SUB_ELEMENT_SEPARATOR", ""),
	}
}

// applyFlagOverrides lets CLI flags win over .env and process environment.
func applyFlagOverrides(configs *cmd.Config) {
	if flagPort != "" {
		configs.HTTPPort = flagPort
	}
	if flagInboxDir != "" {
		configs.InboxDir = flagInboxDir
	}
	if flagOutboxDir != "" {
		configs.OutboxDir = flagOutboxDir
	}
	if flagSchedule != "" {
		configs.SweepSchedule = flagSchedule
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return value
}

func envFloatOrDefault(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, raw)
	}
	return value
}

func envBoolOrDefault(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("%s must be a boolean, got %q", key, raw)
	}
	return value
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.HTTPServer().RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
