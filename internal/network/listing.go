package network

// Entry is one line of a listing: a person and their friends' names.
type Entry struct {
	Name    string   `json:"name"`
	Friends []string `json:"friends"`
}

// Listing is a snapshot of the whole network. People appear in registration
// order, friends in the order the friendships were made. Nothing is sorted.
type Listing struct {
	Empty   bool    `json:"empty"`
	Entries []Entry `json:"entries"`
}

// Listing builds a snapshot of every person and their friends.
func (n *Network) Listing() Listing {
	if len(n.order) == 0 {
		return Listing{Empty: true}
	}

	l := Listing{Entries: make([]Entry, 0, len(n.order))}
	for _, id := range n.order {
		p := n.people[id]
		l.Entries = append(l.Entries, Entry{
			Name:    p.Name,
			Friends: n.names(p.Friends()),
		})
	}
	return l
}
