package synthetic

// Campaign labels, in assignment priority order.
const (
	CampaignRegularGiving    = "Regular Giving"
	CampaignUnsolicited      = "Unsolicited"
	CampaignMajorGiving      = "Major Giving"
	CampaignTaxAppeal        = "Tax Appeal"
	CampaignChristmasAppeal  = "Christmas Appeal"
	CampaignSpringNewsletter = "Spring Newsletter"
	CampaignAutumnNewsletter = "Autumn Newsletter"
)

// unsolicitedShare is the fraction of non-regular gifts attributed to no
// campaign at all regardless of timing.
const unsolicitedShare = 0.05

// assignCampaigns labels every opportunity in place. Regular gifts always
// belong to the regular-giving program; a random 5% of the rest are
// unsolicited; major gifts go to major giving; the remainder follow the
// appeal calendar.
func (g *Generator) assignCampaigns(opportunities []Opportunity) {
	var nonRegular []int
	for i := range opportunities {
		if !opportunities[i].Recurring {
			nonRegular = append(nonRegular, i)
		}
	}

	unsolicited := make(map[int]bool)
	sampleSize := int(float64(len(opportunities)) * unsolicitedShare)
	for _, idx := range g.sampleWithoutReplacement(nonRegular, sampleSize) {
		unsolicited[idx] = true
	}

	for i := range opportunities {
		opportunities[i].Campaign = g.campaignFor(&opportunities[i], unsolicited[i])
	}
}

func (g *Generator) campaignFor(opp *Opportunity, unsolicited bool) string {
	if opp.Recurring {
		return CampaignRegularGiving
	}
	if unsolicited {
		return CampaignUnsolicited
	}
	if opp.MajorGift {
		return CampaignMajorGiving
	}

	month, day := int(opp.CloseDate.Month()), opp.CloseDate.Day()
	switch {
	// Tax Appeal: 1 May to 15 July.
	case month == 5 || month == 6 || (month == 7 && day <= 15):
		return CampaignTaxAppeal
	// Christmas Appeal: 1 November to 15 January.
	case month == 11 || month == 12 || (month == 1 && day <= 15):
		return CampaignChristmasAppeal
	// Spring Newsletter: 16 September to 15 October.
	case (month == 9 && day >= 16) || (month == 10 && day <= 15):
		return CampaignSpringNewsletter
	// Autumn Newsletter: 16 March to 15 April.
	case (month == 3 && day >= 16) || (month == 4 && day <= 15):
		return CampaignAutumnNewsletter
	default:
		return CampaignUnsolicited
	}
}

func (g *Generator) sampleWithoutReplacement(pool []int, n int) []int {
	if n >= len(pool) {
		return pool
	}
	shuffled := append([]int(nil), pool...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
