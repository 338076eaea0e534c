package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/borderline/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

var validLocationKinds = map[types.LocationKind]bool{
	types.KindGeneric:    true,
	types.KindDesert:     true,
	types.KindBorder:     true,
	types.KindSettlement: true,
}

var validTimes = map[types.TimeOfDay]bool{
	types.Dawn: true, types.Day: true, types.Dusk: true, types.Night: true,
}

var validEncounterTypes = map[types.EncounterType]bool{
	types.EncounterMigrant:  true,
	types.EncounterPatrol:   true,
	types.EncounterLocal:    true,
	types.EncounterWildlife: true,
}

var validResourceTypes = map[types.ResourceType]bool{
	types.ResourceWater:  true,
	types.ResourceFood:   true,
	types.ResourceHealth: true,
	types.ResourceMoney:  true,
	types.ResourceItem:   true,
}

var validMoralTypes = map[string]bool{
	"moral": true, "survival": true, "loyalty": true,
}

// validate checks compiled content for consistency.
func validate(content *types.Content) error {
	ve := &ValidationError{}

	seen := map[string]bool{}
	for _, ev := range content.Events {
		if ev.Name == "" {
			ve.addf("event with empty name")
			continue
		}
		if seen[ev.Name] {
			ve.addf("event %q: duplicate name", ev.Name)
		}
		seen[ev.Name] = true

		if ev.Description == "" {
			ve.addf("event %q: description is required", ev.Name)
		}
		for _, l := range ev.Locations {
			if !validLocationKinds[l] {
				ve.addf("event %q: unknown location kind %q", ev.Name, l)
			}
		}
		for _, t := range ev.Times {
			if !validTimes[t] {
				ve.addf("event %q: unknown time of day %q", ev.Name, t)
			}
		}
		validatePayload(ev, ve)
	}

	for _, d := range content.Dialogue {
		if d.Character == "" {
			ve.addf("dialogue with empty character name")
		}
		if len(d.Lines) == 0 {
			ve.addf("dialogue for %q: at least one line is required", d.Character)
		}
		if d.PlayerKind != "" && d.PlayerKind != "migrant" && d.PlayerKind != "patrol" {
			ve.addf("dialogue for %q: unknown player kind %q", d.Character, d.PlayerKind)
		}
	}

	for i, f := range content.Flavor {
		if f.Kind != "migrant" && f.Kind != "patrol" {
			ve.addf("flavor event %d: kind must be migrant or patrol, got %q", i+1, f.Kind)
		}
		if f.Description == "" {
			ve.addf("flavor event %d: description is required", i+1)
		}
	}

	for i, lf := range content.LocationFlavor {
		if !validLocationKinds[lf.Kind] {
			ve.addf("location flavor %d: unknown location kind %q", i+1, lf.Kind)
		}
		if len(lf.Lines) == 0 {
			ve.addf("location flavor %d: at least one line is required", i+1)
		}
	}

	for i, q := range content.Quotes {
		if strings.TrimSpace(q) == "" {
			ve.addf("quote %d: empty", i+1)
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validatePayload(ev types.EventDef, ve *ValidationError) {
	switch ev.Kind {
	case types.EventEncounter:
		if !validEncounterTypes[ev.Encounter.Type] {
			ve.addf("event %q: unknown encounter type %q", ev.Name, ev.Encounter.Type)
		}
		for i, c := range ev.Encounter.Choices {
			if c.Label == "" {
				ve.addf("event %q: choice %d has no label", ev.Name, i+1)
			}
		}
	case types.EventResource:
		if !validResourceTypes[ev.Resource.Type] {
			ve.addf("event %q: unknown resource type %q", ev.Name, ev.Resource.Type)
		}
		if ev.Resource.Amount == 0 {
			ve.addf("event %q: resource amount must be nonzero", ev.Name)
		}
		if d := ev.Resource.Difficulty; d != nil && (*d < 0 || *d > 100) {
			ve.addf("event %q: difficulty %d out of range 0-100", ev.Name, *d)
		}
	case types.EventCrossing:
		if len(ev.Crossing.Methods) == 0 {
			ve.addf("event %q: crossing needs at least one method", ev.Name)
		}
		for i, m := range ev.Crossing.Methods {
			if m.Name == "" {
				ve.addf("event %q: method %d has no name", ev.Name, i+1)
			}
			if m.SuccessChance < 0 || m.SuccessChance > 100 {
				ve.addf("event %q: method %q success chance %d out of range 0-100", ev.Name, m.Name, m.SuccessChance)
			}
		}
	case types.EventMoral:
		if !validMoralTypes[ev.Moral.Type] {
			ve.addf("event %q: unknown moral type %q", ev.Name, ev.Moral.Type)
		}
		if len(ev.Moral.Choices) == 0 {
			ve.addf("event %q: moral event needs choices", ev.Name)
		}
		if len(ev.Moral.Choices) != len(ev.Moral.Consequences) {
			ve.addf("event %q: %d choices but %d consequences", ev.Name,
				len(ev.Moral.Choices), len(ev.Moral.Consequences))
		}
	case types.EventWeather:
		if ev.Weather.Type == "" {
			ve.addf("event %q: weather type is required", ev.Name)
		}
		if ev.Weather.Duration < 0 {
			ve.addf("event %q: negative duration", ev.Name)
		}
	case types.EventTrauma:
		if ev.Trauma.Level < 1 || ev.Trauma.Level > 10 {
			ve.addf("event %q: trauma level %d out of range 1-10", ev.Name, ev.Trauma.Level)
		}
	}
}
