package restaurant

import "encoding/json"

// HoursEntry is a single weekday's operating window. Times are 12-hour
// strings in "H:MMam/pm" form, e.g. "9am" or "11:30pm".
type HoursEntry struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeekHours is an ordered collection of per-weekday windows. A day absent
// from the collection is treated as closed.
type WeekHours []HoursEntry

// UnmarshalJSON accepts either a JSON array of entries or that same array
// serialized inside a JSON string (some feeds double-encode the field).
// Malformed input yields nil hours rather than an error; downstream
// open-now evaluation treats that as closed.
func (w *WeekHours) UnmarshalJSON(data []byte) error {
	*w = nil

	var entries []HoursEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		*w = entries
		return nil
	}

	var serialized string
	if err := json.Unmarshal(data, &serialized); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(serialized), &entries); err != nil {
		return nil
	}
	*w = entries
	return nil
}
