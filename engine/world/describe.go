package world

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/types"
)

// Describe renders the location for the player. The world resolves
// connection names; exclude drops the player from the "Present" line.
// The short form is just name and description; detailed adds danger,
// paths, occupants, items, conditions, and the variant-specific blocks.
func (l *Location) Describe(detailed bool, w *World, exclude *character.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", l.Name, l.Description)
	if !detailed {
		return b.String()
	}

	b.WriteString("\nDanger Level: ")
	switch {
	case l.DangerLevel <= 2:
		b.WriteString("Low - Relatively safe area.")
	case l.DangerLevel <= 5:
		b.WriteString("Medium - Exercise caution.")
	case l.DangerLevel <= 8:
		b.WriteString("High - Very dangerous area.")
	default:
		b.WriteString("Extreme - Life-threatening conditions.")
	}

	b.WriteString("\nPaths: ")
	if len(l.Connections) > 0 {
		var paths []string
		for _, dir := range sortedDirections(l.Connections) {
			name := l.Connections[dir]
			if w != nil {
				if to := w.Get(name); to != nil {
					name = to.Name
				}
			}
			paths = append(paths, fmt.Sprintf("%s to %s", dir, name))
		}
		b.WriteString(strings.Join(paths, ", "))
	} else {
		b.WriteString("No obvious paths from here.")
	}

	b.WriteString("\nPresent: ")
	var present []string
	for _, c := range l.Characters {
		if c != exclude {
			present = append(present, c.Name)
		}
	}
	if len(present) > 0 {
		b.WriteString(strings.Join(present, ", "))
	} else {
		b.WriteString("No one else is here.")
	}

	b.WriteString("\nItems: ")
	if len(l.Items) > 0 {
		b.WriteString(strings.Join(l.Items, ", "))
	} else {
		b.WriteString("Nothing useful found here.")
	}

	if len(l.Environment) > 0 {
		b.WriteString("\nConditions: ")
		var conditions []string
		if v, ok := l.Environment["visibility"].(float64); ok {
			switch {
			case v < 0.3:
				conditions = append(conditions, "extremely poor visibility")
			case v < 0.7:
				conditions = append(conditions, "limited visibility")
			default:
				conditions = append(conditions, "clear visibility")
			}
		}
		if t, ok := l.Environment["terrain"].(string); ok {
			conditions = append(conditions, t+" terrain")
		}
		if t, ok := l.Environment["temperature"].(string); ok {
			conditions = append(conditions, t+" temperature")
		}
		b.WriteString(strings.Join(conditions, ", "))
	}

	switch {
	case l.Desert != nil:
		b.WriteString(l.describeDesert())
	case l.Border != nil:
		b.WriteString(l.describeBorder())
	case l.Settlement != nil:
		b.WriteString(l.describeSettlement())
	}
	return b.String()
}

// sortedDirections keeps path listings stable across runs.
func sortedDirections(conns map[string]string) []string {
	order := []string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}
	var dirs []string
	for _, d := range order {
		if _, ok := conns[d]; ok {
			dirs = append(dirs, d)
		}
	}
	for d := range conns {
		known := false
		for _, o := range order {
			if d == o {
				known = true
				break
			}
		}
		if !known {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (l *Location) describeDesert() string {
	var b strings.Builder
	b.WriteString("\nWater: ")
	switch {
	case l.Desert.WaterScarcity >= 8:
		b.WriteString("Critically scarce - No water sources visible.")
	case l.Desert.WaterScarcity >= 5:
		b.WriteString("Very limited - Might find small amounts if lucky.")
	default:
		b.WriteString("Limited - Some water sources may be found.")
	}

	b.WriteString("\nTime: ")
	switch l.TimeOfDay {
	case types.Dawn:
		b.WriteString("Dawn brings brief respite from the heat, but the day's furnace is awakening.")
	case types.Day:
		b.WriteString("The sun is merciless, baking the sand and everything upon it.")
	case types.Dusk:
		b.WriteString("The setting sun paints the dunes in gold and crimson as the air begins to cool.")
	default:
		b.WriteString("Desert night brings bitter cold, a cruel contrast to the day's heat.")
	}
	return b.String()
}

func (l *Location) describeBorder() string {
	var b strings.Builder
	b.WriteString("\nPatrol: ")
	switch {
	case l.Border.PatrolIntensity >= 8:
		b.WriteString("Heavy presence - Constant surveillance and patrols.")
	case l.Border.PatrolIntensity >= 5:
		b.WriteString("Moderate presence - Regular patrols pass through.")
	default:
		b.WriteString("Light presence - Occasional patrols in the area.")
	}

	b.WriteString("\nTime: ")
	switch l.TimeOfDay {
	case types.Dawn:
		b.WriteString("Dawn shift change brings fresh patrols and renewed vigilance.")
	case types.Day:
		b.WriteString("Daylight makes crossing more visible, but patrols more predictable.")
	case types.Dusk:
		b.WriteString("Dusk brings increased crossing attempts as visibility decreases.")
	default:
		b.WriteString("Night operations use thermal imaging and night vision to detect movement.")
	}

	b.WriteString("\nSurveillance: ")
	switch level := l.Border.SurveillanceLevel(); {
	case level >= 80:
		b.WriteString("Multiple cameras, sensors, and drones monitor the area constantly.")
	case level >= 50:
		b.WriteString("Periodic drone flights and stationary cameras cover key crossing points.")
	default:
		b.WriteString("Basic surveillance with occasional monitoring.")
	}
	return b.String()
}

func (l *Location) describeSettlement() string {
	s := l.Settlement
	var b strings.Builder
	b.WriteString("\nPopulation: ")
	switch {
	case s.Population > 100000:
		b.WriteString("Major urban center")
	case s.Population > 10000:
		b.WriteString("Large community")
	case s.Population > 1000:
		b.WriteString("Medium-sized community")
	case s.Population > 100:
		b.WriteString("Small community")
	default:
		b.WriteString("Tiny settlement")
	}
	if s.Population > 0 {
		fmt.Fprintf(&b, " (~%s people)", humanize.Comma(int64(s.Population)))
	}

	b.WriteString("\nServices: ")
	if len(s.Services) > 0 {
		b.WriteString(strings.Join(s.Services, ", "))
	} else {
		b.WriteString("No services available")
	}

	b.WriteString("\nLocal Attitude: ")
	switch s.Attitude {
	case types.Friendly:
		b.WriteString("Residents seem welcoming and helpful.")
	case types.Neutral:
		b.WriteString("People mind their own business, neither helpful nor hostile.")
	case types.Wary:
		b.WriteString("Locals watch strangers with suspicion and keep their distance.")
	default:
		b.WriteString("There's a palpable tension in the air. It's best to keep a low profile.")
	}

	b.WriteString("\nTime: ")
	switch l.TimeOfDay {
	case types.Dawn:
		b.WriteString("The settlement stirs to life as the first light breaks.")
	case types.Day:
		b.WriteString("Daily activities are in full swing, streets busy with locals.")
	case types.Dusk:
		b.WriteString("People return home as businesses begin to close for the evening.")
	default:
		b.WriteString("Streets are mostly empty, with only a few late-night establishments active.")
	}
	return b.String()
}
