package roster

import "time"

// Member is one selected candidate on the team roster. Only the name
// is stored; the candidate record itself lives in the intake document
// and is joined back in at read time.
type Member struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// Names extracts the member names in roster order.
func Names(members []Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names
}
