package model

// DailyChoiceLimit caps how many distinct items a user may act on per
// calendar day.
const DailyChoiceLimit = 20

// DailyChoices scopes the chosen-item set to a device-local calendar
// day (YYYY-MM-DD). ChosenIDs is a dedup set kept as a slice for
// stable JSON round-trips.
type DailyChoices struct {
	Day       string   `json:"date"`
	ChosenIDs []string `json:"chosenItems"`
}

func (d DailyChoices) Contains(itemID string) bool {
	for _, id := range d.ChosenIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

func (d DailyChoices) Count() int {
	return len(d.ChosenIDs)
}

func (d DailyChoices) Clone() DailyChoices {
	ids := make([]string, len(d.ChosenIDs))
	copy(ids, d.ChosenIDs)
	return DailyChoices{Day: d.Day, ChosenIDs: ids}
}
