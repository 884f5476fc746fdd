package donation

type donorFacts struct {
	organisation bool
	recurring    bool
	oneOff       bool
}

// Partition splits donation records into the four disjoint donor groups.
// A donor is classified once, from all of its records: organisation
// accounts first, then by whether the donor's gifts are all
// recurring-linked, all one-off, or a mix. Every record with a valid
// donor id lands in exactly one group.
func Partition(records []Record) map[Group][]Record {
	facts := make(map[string]*donorFacts)
	for _, rec := range records {
		f, ok := facts[rec.DonorID]
		if !ok {
			f = &donorFacts{}
			facts[rec.DonorID] = f
		}
		if rec.AccountType == AccountOrganisation {
			f.organisation = true
		}
		if rec.RecurringLinked {
			f.recurring = true
		} else {
			f.oneOff = true
		}
	}

	groups := make(map[Group][]Record, 4)
	for _, rec := range records {
		g := groupFor(facts[rec.DonorID])
		groups[g] = append(groups[g], rec)
	}
	return groups
}

func groupFor(f *donorFacts) Group {
	switch {
	case f.organisation:
		return GroupOrganisation
	case f.recurring && f.oneOff:
		return GroupRGAndNonRG
	case f.recurring:
		return GroupRGOnly
	default:
		return GroupNonRGOnly
	}
}
