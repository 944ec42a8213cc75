package vaccinations

import "vax-tracker/internal/domain/listfilter"

// Predicates traduce el filtro a predicados puros; el adapter in-memory los aplica tal cual.
func (f TodayFilter) Predicates() []listfilter.Predicate[DailyRecord] {
	return []listfilter.Predicate[DailyRecord]{
		func(r DailyRecord) bool { return listfilter.MatchText(f.Query, r.PetName, r.Owner, r.PetID) },
		func(r DailyRecord) bool { return listfilter.MatchContains(f.Municipality, r.Municipality) },
		func(r DailyRecord) bool { return listfilter.MatchCategory(f.Veterinarian, r.Veterinarian) },
		func(r DailyRecord) bool { return listfilter.MatchContains(f.Location, r.Location) },
	}
}

// CountByStatus cuenta los registros por estado.
func CountByStatus(records []DailyRecord) StatusCounts {
	c := StatusCounts{Total: len(records)}
	c.Completed = listfilter.Count(records, hasStatus(StatusCompleted))
	c.InProgress = listfilter.Count(records, hasStatus(StatusInProgress))
	c.Scheduled = listfilter.Count(records, hasStatus(StatusScheduled))
	return c
}

func hasStatus(s RecordStatus) listfilter.Predicate[DailyRecord] {
	return func(r DailyRecord) bool { return r.Status == s }
}
