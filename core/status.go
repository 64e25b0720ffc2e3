package core

import "github.com/calldeck/calldeck/schema"

// callStatusOrder fixes the display order of status buckets.
var callStatusOrder = []schema.CallStatus{
	schema.CallCompleted,
	schema.CallMissed,
	schema.CallFailed,
	schema.CallOngoing,
	schema.CallUnknown,
}

// StatusDistributionFor groups calls by status. Rows with an empty or
// unrecognized status land in the "unknown" bucket. Only statuses that
// actually occur are returned, in a fixed canonical order.
func StatusDistributionFor(rows []schema.CallRecord) []schema.StatusSlice {
	counts := make(map[schema.CallStatus]int)
	for _, r := range rows {
		counts[schema.NormalizeCallStatus(string(r.Status))]++
	}

	slices := make([]schema.StatusSlice, 0, len(counts))
	for _, status := range callStatusOrder {
		if n := counts[status]; n > 0 {
			slices = append(slices, schema.StatusSlice{Name: string(status), Count: n})
		}
	}
	return slices
}
