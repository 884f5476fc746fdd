package synthetic

import (
	"time"

	"github.com/ktevon/donorkit/pkg/donation"
)

// Config controls the shape of a generated dataset. The defaults mirror
// a mid-sized Australian charity: five years of history, a long tail of
// one-off givers and a smaller recurring-giving base.
type Config struct {
	Contacts          int
	StartYear         int
	EndYear           int
	Seed              int64
	OrganisationShare float64
	// OneOffTarget is the total opportunity count to aim for; one-off
	// gifts fill whatever the regular-giving program did not.
	OneOffTarget int
}

func DefaultConfig() Config {
	return Config{
		Contacts:          5000,
		StartYear:         2021,
		EndYear:           2025,
		Seed:              42,
		OrganisationShare: 0.03,
		OneOffTarget:      50000,
	}
}

// Contact is a generated CRM contact with the behavioral signals baked
// in: major-donor likelihood rises with age, regular-giving likelihood
// falls with it.
type Contact struct {
	ID          string
	Name        string
	Age         int
	Gender      string
	AccountType donation.AccountType
	IsMajor     bool
	IsRegular   bool
}

// Opportunity is a generated completed gift.
type Opportunity struct {
	ID          string
	ContactID   string
	AccountType donation.AccountType
	CloseDate   time.Time
	Amount      float64
	Recurring   bool
	MajorGift   bool
	Stage       string
	Campaign    string
}

// Dataset is one full generated export.
type Dataset struct {
	Contacts      []Contact
	Opportunities []Opportunity
}
