package cmd

type Config struct {
	HTTPPort string

	InboxDir      string
	OutboxDir     string
	ProcessedDir  string
	FailedDir     string
	SweepSchedule string

	SenderID   string
	ReceiverID string

	SSCCCompanyPrefix  string
	SSCCExtensionDigit string
	SSCCSerialStart    int
	SSCCSerialWidth    int

	MaxUnitsPerCarton  int
	MaxWeightPerCarton float64
	SingleSKUCartons   bool

	SegmentTerminator   string
	ElementSeparator    string
	SubElementSeparator string
}
