package utils

// Streak counts the consecutive run of answered days ending at anchor.
// Starting at the anchor date it walks backward one day at a time; the
// first date missing from the set terminates the count. A user who
// answered neither on the anchor nor before it has a streak of zero no
// matter how long their older history is.
func Streak(answeredDates []string, anchor string) int {
	set := make(map[string]struct{}, len(answeredDates))
	for _, d := range answeredDates {
		set[d] = struct{}{}
	}

	streak := 0
	cursor := anchor
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		streak++
		prev, err := AddDays(cursor, -1)
		if err != nil {
			break
		}
		cursor = prev
	}

	return streak
}
