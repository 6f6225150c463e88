package match

// Participant is one member of a gift-exchange group.
//
// Name is the matching key and must be unique within the group; callers
// are responsible for deduplication before invoking the solver. ID is an
// opaque caller-supplied identifier threaded through into [Assignment]
// unchanged - the solver never interprets it.
type Participant struct {
	ID   string // opaque identifier, may be empty
	Name string // unique display name, the matching key

	// Exclusions lists the names this participant refuses to give to.
	// Entries naming people outside the group are allowed and have no
	// effect. The relation is one-directional: excluding someone does
	// not prevent them from giving to you.
	Exclusions []string
}

// Assignment binds one giver to the receiver they were matched with.
type Assignment struct {
	GiverID  string // the giver's Participant.ID, copied through
	Giver    string // giver name
	Receiver string // receiver name
}
