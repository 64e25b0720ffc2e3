package core

import (
	"sort"
	"strings"

	"github.com/calldeck/calldeck/schema"
)

// otherOutcome is the bucket for calls without an outcome tag.
const otherOutcome = "other"

// OutcomesFor groups calls by outcome tag into (name, count, percent)
// slices sorted by count descending (name ascending on ties, for
// determinism). Leads captured counts calls whose collected-data payload
// has an email or phone value; presence of those two keys is the contract,
// so widening the check is a behavior change, not a fix.
func OutcomesFor(rows []schema.CallRecord) schema.OutcomeDistribution {
	counts := make(map[string]int)
	leads := 0
	for _, r := range rows {
		name := strings.TrimSpace(r.Outcome)
		if name == "" {
			name = otherOutcome
		}
		counts[name]++
		if r.Collected.HasLead() {
			leads++
		}
	}

	total := len(rows)
	slices := make([]schema.OutcomeSlice, 0, len(counts))
	for name, count := range counts {
		slices = append(slices, schema.OutcomeSlice{
			Name:    name,
			Count:   count,
			Percent: ratePercent(count, total),
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Name < slices[j].Name
	})

	return schema.OutcomeDistribution{Slices: slices, LeadsCaptured: leads}
}
