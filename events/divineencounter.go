package events

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

const (
	DivineEncounterName    = "Divine Encounter 2026"
	DivineEncounterTagline = "Where Heaven Meets Earth - A transformative spiritual gathering"

	// ₦5,000 in kobo.
	divineEncounterPriceKobo = 500000
)

// West Africa Time has no daylight saving, so a fixed zone avoids depending on
// tzdata being present in the container.
var lagos = time.FixedZone("WAT", 60*60)

func DivineEncounter2026(id uuid.UUID) Event {
	return Event{
		ID:      id,
		Version: 1,
		Name:    DivineEncounterName,
		Tagline: DivineEncounterTagline,
		EventLocation: Location{
			Name: "Grace Convention Center",
			LocAddress: Address{
				City:    "Lagos",
				State:   "Lagos",
				Country: "Nigeria",
			},
		},
		StartTime: time.Date(2026, time.March, 15, 18, 0, 0, 0, lagos),
		EndTime:   time.Date(2026, time.March, 17, 13, 0, 0, 0, lagos),
		Price:     money.New(divineEncounterPriceKobo, money.NGN),
	}
}
