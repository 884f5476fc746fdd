// Package synthetic generates a realistic charitable-donation dataset:
// seasonally weighted acquisition and giving (summer holiday slump, EOFY
// tax appeal, Christmas appeal), log-decay churn for regular givers, and
// Pareto-distributed one-off gift amounts.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/ktevon/donorkit/pkg/donation"
)

// Monthly weights for when regular givers are acquired. December and
// January are low: the Australian summer holiday slump.
var acquisitionWeights = []float64{0.6, 0.9, 1.0, 1.1, 1.1, 1.2, 1.2, 1.1, 1.0, 1.0, 0.8, 0.4}

// Monthly weights for one-off gifts. May/June peak with the EOFY tax
// appeal, November/December with the Christmas appeal.
var oneOffWeights = []float64{1.0, 0.8, 1.0, 1.2, 3.5, 5.0, 1.2, 1.0, 1.1, 1.5, 4.0, 6.0}

type Generator struct {
	cfg   Config
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func New(cfg Config) *Generator {
	return &Generator{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		faker: gofakeit.New(uint64(cfg.Seed)),
	}
}

// Generate produces a complete dataset. Output is deterministic for a
// fixed seed.
func (g *Generator) Generate() *Dataset {
	contacts := g.Contacts()
	opportunities := g.RegularGiving(contacts)
	opportunities = append(opportunities, g.OneOffGifts(contacts, len(opportunities))...)
	g.assignCampaigns(opportunities)

	return &Dataset{
		Contacts:      contacts,
		Opportunities: opportunities,
	}
}

// Contacts generates the contact base with age-dependent signals.
func (g *Generator) Contacts() []Contact {
	contacts := make([]Contact, g.cfg.Contacts)
	for i := range contacts {
		contact := Contact{
			ID:          fmt.Sprintf("003%012d", i+1),
			AccountType: donation.AccountIndividual,
		}

		if g.rng.Float64() < g.cfg.OrganisationShare {
			contact.AccountType = donation.AccountOrganisation
			contact.Name = g.faker.Company()
			// Organisations give like major donors.
			contact.IsMajor = true
			contacts[i] = contact
			continue
		}

		contact.Age = 18 + g.rng.Intn(73)
		contact.Gender = g.pickGender()
		contact.Name = g.faker.Name()

		majorProb := 0.001 + float64(contact.Age)/100*0.05
		contact.IsMajor = g.rng.Float64() < majorProb

		regularProb := 0.40 - float64(contact.Age)/100*0.30
		contact.IsRegular = g.rng.Float64() < regularProb

		contacts[i] = contact
	}
	return contacts
}

func (g *Generator) pickGender() string {
	switch v := g.rng.Float64(); {
	case v < 0.52:
		return "F"
	case v < 0.97:
		return "M"
	default:
		return "Non-binary"
	}
}

// RegularGiving generates monthly transactions for every regular giver:
// a seasonally weighted start month, then one gift per month until a
// log-decay churn roll ends the commitment. Donors are most likely to
// quit early; long-tenured donors rarely leave.
func (g *Generator) RegularGiving(contacts []Contact) []Opportunity {
	endDate := time.Date(g.cfg.EndYear, 12, 31, 0, 0, 0, 0, time.UTC)
	months := g.monthOptions()
	cumulative := cumulativeWeights(repeatYearly(acquisitionWeights, g.cfg.EndYear-g.cfg.StartYear+1))

	var transactions []Opportunity
	for _, contact := range contacts {
		if !contact.IsRegular {
			continue
		}

		start := months[g.pickWeighted(cumulative)]
		maxMonths := monthsBetween(start, endDate) + 1

		stayed := 1
		for m := 2; m <= maxMonths; m++ {
			dropProb := 0.15 / (1 + math.Log(float64(m-1)))
			if g.rng.Float64() < dropProb {
				break
			}
			stayed = m
		}

		amount := float64(10 + 5*g.rng.Intn(19)) // $10..$100 in $5 steps
		for m := 0; m < stayed; m++ {
			txDate := start.AddDate(0, m, 0)
			if txDate.After(endDate) {
				break
			}
			transactions = append(transactions, Opportunity{
				ID:          fmt.Sprintf("006_REG_%08d", len(transactions)),
				ContactID:   contact.ID,
				AccountType: contact.AccountType,
				CloseDate:   txDate,
				Amount:      amount,
				Recurring:   true,
				Stage:       "Closed Won",
			})
		}
	}
	return transactions
}

// OneOffGifts fills the dataset up to the configured opportunity target
// with ad-hoc gifts: seasonally weighted dates, Pareto-skewed donor
// activity and gift amounts, rounded to plausible ask amounts.
func (g *Generator) OneOffGifts(contacts []Contact, existing int) []Opportunity {
	remaining := g.cfg.OneOffTarget - existing
	if remaining <= 0 {
		return nil
	}

	activity := make([]float64, len(contacts))
	for i := range activity {
		activity[i] = g.pareto(2.0) + 1
	}
	cumulative := cumulativeWeights(activity)
	monthCumulative := cumulativeWeights(oneOffWeights)

	gifts := make([]Opportunity, 0, remaining)
	for i := 0; i < remaining; i++ {
		contact := contacts[g.pickWeighted(cumulative)]
		year := g.cfg.StartYear + g.rng.Intn(g.cfg.EndYear-g.cfg.StartYear+1)

		gifts = append(gifts, Opportunity{
			ID:          fmt.Sprintf("006_GEN_%08d", i),
			ContactID:   contact.ID,
			AccountType: contact.AccountType,
			CloseDate:   g.seasonalDate(year, monthCumulative),
			Amount:      g.giftAmount(contact.IsMajor),
			MajorGift:   contact.IsMajor,
			Stage:       "Closed Won",
		})
	}
	return gifts
}

func (g *Generator) giftAmount(major bool) float64 {
	var amount float64
	if major {
		// Low alpha: extreme variance. Minimum major gift is $1k,
		// capped at $50k.
		amount = g.pareto(1.2)*500 + 1000
		if amount > 50000 {
			amount = 20000 + g.rng.Float64()*30000
		}
	} else {
		amount = g.pareto(3.0)*75 + 25
		if amount > 1000 {
			amount = 500 + g.rng.Float64()*500
		}
	}

	switch {
	case amount >= 1000:
		return roundToBase(amount, 500)
	case amount >= 100:
		return roundToBase(amount, 50)
	default:
		return roundToBase(amount, 5)
	}
}

func (g *Generator) seasonalDate(year int, monthCumulative []float64) time.Time {
	month := g.pickWeighted(monthCumulative) + 1
	day := 1 + g.rng.Intn(daysInMonth(month))
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// pareto draws from the Pareto II (Lomax) distribution with the given
// shape, matching numpy's random.pareto.
func (g *Generator) pareto(alpha float64) float64 {
	u := g.rng.Float64()
	return math.Pow(1-u, -1/alpha) - 1
}

func (g *Generator) pickWeighted(cumulative []float64) int {
	target := g.rng.Float64() * cumulative[len(cumulative)-1]
	for i, c := range cumulative {
		if target < c {
			return i
		}
	}
	return len(cumulative) - 1
}

func (g *Generator) monthOptions() []time.Time {
	var options []time.Time
	for year := g.cfg.StartYear; year <= g.cfg.EndYear; year++ {
		for month := 1; month <= 12; month++ {
			options = append(options, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
		}
	}
	return options
}

func cumulativeWeights(weights []float64) []float64 {
	cumulative := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	return cumulative
}

func repeatYearly(weights []float64, years int) []float64 {
	out := make([]float64, 0, len(weights)*years)
	for y := 0; y < years; y++ {
		out = append(out, weights...)
	}
	return out
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// Leap years deliberately ignored; 29 February never occurs in output.
func daysInMonth(month int) int {
	switch month {
	case 2:
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func roundToBase(amount, base float64) float64 {
	return base * math.Round(amount/base)
}
