package events

import "strings"

type Location struct {
	Name       string
	LocAddress Address
}

type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// String renders the venue the way it is shown to attendees, e.g.
// "Grace Convention Center, Lagos".
func (l Location) String() string {
	parts := []string{}
	for _, p := range []string{l.Name, l.LocAddress.City} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
