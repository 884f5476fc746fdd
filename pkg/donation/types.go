package donation

import "time"

// AccountType distinguishes organisation accounts from individual contacts.
type AccountType string

const (
	AccountOrganisation AccountType = "Organisation"
	AccountIndividual   AccountType = "Individual"
)

// Group is one of the four disjoint donor partitions scored independently.
type Group string

const (
	GroupOrganisation Group = "organisation"
	GroupRGOnly       Group = "rg_only"
	GroupNonRGOnly    Group = "non_rg_only"
	GroupRGAndNonRG   Group = "rg_and_non_rg"
)

// Groups returns the four partitions in a fixed, deterministic order.
func Groups() []Group {
	return []Group{GroupOrganisation, GroupRGOnly, GroupNonRGOnly, GroupRGAndNonRG}
}

// Record is a single completed gift as exported from the CRM.
type Record struct {
	OpportunityID   string
	DonorID         string
	AccountType     AccountType
	CloseDate       time.Time
	Amount          float64
	RecurringLinked bool
	Campaign        string
}

// DonorAggregate holds the per-donor rollup the RFM scores are computed from.
// Built once per run and never mutated.
type DonorAggregate struct {
	DonorID     string
	LastGift    time.Time
	Frequency   int
	Monetary    float64
	RecencyDays float64
}

// Stats counts what happened to the rows of one ingestion pass.
type Stats struct {
	TotalRows     int
	ValidRows     int
	ExcludedRows  int
	DuplicateRows int

	MissingDonorID    int
	BadAccountType    int
	BadCloseDate      int
	BadAmount         int
	NonPositiveAmount int
	OutsideWindow     int
	NotClosedWon      int
}

// ReadResult is the outcome of ingesting a donation export.
type ReadResult struct {
	Records []Record
	Stats   Stats
}

// ReadOptions controls ingestion behavior.
type ReadOptions struct {
	// Dedupe drops rows whose opportunity id was already seen.
	Dedupe bool
	// WindowStart excludes gifts closed before this instant. Zero disables
	// the window filter.
	WindowStart time.Time
}

// Reader ingests donation rows from an external export.
type Reader interface {
	ReadFile(path string, opts ReadOptions) (*ReadResult, error)
}
