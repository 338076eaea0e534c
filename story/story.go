// Package story provides the narrative layer: dialogue pools, flavor
// events, trauma moments, moral dilemmas, journey summaries, and
// epilogues. A Provider draws from loaded content where available and
// falls back to the built-in pools otherwise.
package story

import (
	"fmt"
	"strings"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/engine/session"
	"github.com/nathoo/borderline/types"
)

// Ending types recognized by Ending.
const (
	EndingSuccess  = "success"
	EndingDetained = "detained"
	EndingDeath    = "death"
	EndingTimeout  = "timeout"
)

// Provider selects narrative text. All random picks go through the
// shared RNG so runs are reproducible from a seed.
type Provider struct {
	content *types.Content
	r       *rng.RNG
}

// New returns a Provider backed by the given content. Content may be
// nil; the built-in pools then serve everything.
func New(content *types.Content, r *rng.RNG) *Provider {
	return &Provider{content: content, r: r}
}

// Quote returns a random border reflection.
func (p *Provider) Quote() string {
	pool := quotes
	if p.content != nil && len(p.content.Quotes) > 0 {
		pool = p.content.Quotes
	}
	return pool[p.r.Pick(len(pool))]
}

// TraumaMoment is an unprompted traumatic experience with a closing
// reflection. The caller applies the psychological cost.
type TraumaMoment struct {
	Description string
	Reflection  string
}

// RandomTrauma picks a traumatic moment from the pool.
func (p *Provider) RandomTrauma() TraumaMoment {
	return traumaMoments[p.r.Pick(len(traumaMoments))]
}

// FlavorEvent returns a purely narrative event for the player's kind,
// or false when no pool exists for that kind. Flavor events never
// change game state.
func (p *Provider) FlavorEvent(kind character.Kind) (types.FlavorEventDef, bool) {
	var pool []types.FlavorEventDef
	if p.content != nil {
		for _, f := range p.content.Flavor {
			if f.Kind == string(kind) {
				pool = append(pool, f)
			}
		}
	}
	if len(pool) == 0 {
		pool = builtinFlavor[kind]
	}
	if len(pool) == 0 {
		return types.FlavorEventDef{}, false
	}
	return pool[p.r.Pick(len(pool))], true
}

// LocationFlavor returns one thematic line for a location. Named
// content pools win over kind pools, which win over the built-ins.
func (p *Provider) LocationFlavor(kind types.LocationKind, name string) string {
	if p.content != nil {
		var kindPool []string
		for _, lf := range p.content.LocationFlavor {
			if lf.Name == name && len(lf.Lines) > 0 {
				return lf.Lines[p.r.Pick(len(lf.Lines))]
			}
			if lf.Name == "" && lf.Kind == kind {
				kindPool = append(kindPool, lf.Lines...)
			}
		}
		if len(kindPool) > 0 {
			return kindPool[p.r.Pick(len(kindPool))]
		}
	}

	pool, ok := locationFlavor[kind]
	if !ok {
		pool = genericLocationFlavor
	}
	line := pool[p.r.Pick(len(pool))]
	return strings.ReplaceAll(line, "{name}", name)
}

// Dialogue returns the pool of lines a character could speak to the
// player, shaped by both characters' kinds and the speaker's traits.
func (p *Provider) Dialogue(speaker, player *character.Character) []string {
	var lines []string

	switch speaker.Kind() {
	case character.KindMigrant:
		if player.Kind() == character.KindMigrant {
			lines = p.migrantToMigrant(speaker)
			for _, t := range []struct{ trait, line string }{
				{"religious", "God walks with us in this desert. He must, or none would survive."},
				{"educated", "I was a teacher back home. My students would hardly recognize me now. Strange how quickly identity dissolves."},
				{"former_military", "I served my country, and now I flee it. The ironies of life never cease."},
			} {
				if speaker.HasTrait(t.trait) {
					lines = append(lines, t.line)
				}
			}
		} else {
			lines = append(lines, migrantToPatrol...)
			for _, t := range []struct{ trait, line string }{
				{"desperate", "Please... I'm begging you. I can't go back. I CAN'T."},
				{"defiant", "Your laws are just lines on paper. They don't erase my right to survive."},
				{"educated", "I've studied your country's history. A nation of immigrants that now fears immigration. The contradiction is... striking."},
			} {
				if speaker.HasTrait(t.trait) {
					lines = append(lines, t.line)
				}
			}
		}

	case character.KindAgent:
		if player.Kind() == character.KindAgent {
			lines = append(lines, fmt.Sprintf("Been doing this %d years now. Each year, the weight gets heavier.", speaker.Agent.YearsOfService))
			lines = append(lines, patrolToPatrol...)
			for _, t := range []struct{ trait, line string }{
				{"veteran", "Served in Afghanistan before this. Different desert, same human suffering. Never gets easier."},
				{"bureaucrat", "Keep your paperwork clean. Only way to survive when the inquiries start coming."},
				{"compassionate", "I keep extra water in my vehicle. Against protocol, but I can't watch people suffer if I can prevent it."},
			} {
				if speaker.HasTrait(t.trait) {
					lines = append(lines, t.line)
				}
			}
		} else {
			kin := []string{"grandparents", "parents", "family"}
			lines = append(lines, patrolToMigrant...)
			lines = append(lines, fmt.Sprintf("My own %s crossed this same desert. The irony isn't lost on me.", kin[p.r.Pick(len(kin))]))
			for _, t := range []struct{ trait, line string }{
				{"by_the_book", "I'm placing you under the custody of United States Border Patrol. You have the right to claim asylum if you fear return to your country."},
				{"conflicted", "Sometimes I wonder if I'm on the right side of history. But then, what are the alternatives?"},
				{"hardened", "Save your story. I've heard every variation. The system will determine your case, not me."},
			} {
				if speaker.HasTrait(t.trait) {
					lines = append(lines, t.line)
				}
			}
		}

	default:
		lines = append(lines, genericDialogue...)
		if speaker.Name == "Manuel" {
			lines = append(lines, manuelDialogue...)
		}
	}

	if p.content != nil {
		for _, d := range p.content.Dialogue {
			if d.Character != speaker.Name {
				continue
			}
			if d.PlayerKind != "" && d.PlayerKind != string(player.Kind()) {
				continue
			}
			lines = append(lines, d.Lines...)
		}
	}
	return lines
}

// Line picks one random dialogue line for the speaker.
func (p *Provider) Line(speaker, player *character.Character) string {
	lines := p.Dialogue(speaker, player)
	if len(lines) == 0 {
		return fmt.Sprintf("%s has nothing to say.", speaker.Name)
	}
	return lines[p.r.Pick(len(lines))]
}

func (p *Provider) migrantToMigrant(speaker *character.Character) []string {
	family := "family"
	if m := speaker.Migrant; m != nil && len(m.FamilyTies) > 0 {
		names := make([]string, len(m.FamilyTies))
		for i, t := range m.FamilyTies {
			names[i] = t.Name
		}
		family = strings.Join(names, ", ")
	}
	lines := []string{
		"Each step north carries the weight of those we left behind. But we must keep moving.",
		"I saw someone collapse from dehydration yesterday. The Border Patrol found them... I don't know if they survived.",
		fmt.Sprintf("My %s back home... they're all I think about. Their faces keep me going.", family),
		"Sometimes I wonder if we're just chasing shadows across the desert.",
		"Did you hear about the group they caught near the canyon? Twenty people, including children. All sent back.",
		"I had a good life before. Professional, respected. Now I'm just... another body moving north.",
		"The coyotes charge more each year. They know desperation has no ceiling price.",
		"My brother made this journey three years ago. He said it's harder now. More walls, more sensors, more eyes watching.",
	}
	if m := speaker.Migrant; m != nil {
		lines = append([]string{fmt.Sprintf("We're all trying to find something better. I'm from %s. %s", m.Origin, m.Motivation)}, lines...)
	}
	return lines
}

// Dilemma is a moral choice scenario with parallel choices and outcomes.
type Dilemma struct {
	Description  string
	Choices      []string
	Consequences []DilemmaOutcome
}

// DilemmaOutcome is the result of one dilemma choice.
type DilemmaOutcome struct {
	Description  string
	HopeImpact   int
	HealthImpact int
	MoralImpact  int
	StressImpact int
	Flag         string
}

// RandomDilemma picks a moral dilemma for the player's kind, or false
// when no pool exists for that kind.
func (p *Provider) RandomDilemma(kind character.Kind) (Dilemma, bool) {
	pool, ok := dilemmas[kind]
	if !ok || len(pool) == 0 {
		return Dilemma{}, false
	}
	return pool[p.r.Pick(len(pool))], true
}

// RandomWeather picks a new ambient weather condition.
func (p *Provider) RandomWeather() types.Weather {
	return weatherConditions[p.r.Pick(len(weatherConditions))]
}

// TimeOfDay narrates the phase of the six-turn day cycle.
func (p *Provider) TimeOfDay(turn int) string {
	switch turn % 6 {
	case 0:
		return "Dawn breaks over the desert, painting the landscape in gold and pink."
	case 1:
		return "Morning sun climbs higher, promising heat as the day advances."
	case 2:
		return "Midday sun beats down mercilessly from directly overhead."
	case 3:
		return "Afternoon heat shimmers across the landscape as the sun begins its descent."
	case 4:
		return "Sunset bathes the borderlands in red and orange as shadows lengthen."
	default:
		return "Night falls over the desert, bringing chill air and a canopy of stars."
	}
}

// statBar renders a ten-segment progress bar for a 0-100 value.
func statBar(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return strings.Repeat("█", v/10) + strings.Repeat("░", 10-v/10)
}

// JourneySummary renders the journey so far: distance, impact counts,
// defining moments, and the player's inner state.
func (p *Provider) JourneySummary(player *character.Character, stats *session.JourneyStats) string {
	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                     JOURNEY SUMMARY                        ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintf(&b, "Distance Traveled: %d miles\n", stats.DistanceTraveled)
	fmt.Fprintf(&b, "Physical Journey: %s○\n\n", strings.Repeat("=", stats.DistanceTraveled/20))

	fmt.Fprintf(&b, "Lives Impacted: %d individuals\n", stats.LivesImpacted)
	fmt.Fprintf(&b, "Moral Choices Made: %d decisions\n", stats.MoralChoices)
	fmt.Fprintf(&b, "Traumatic Events Experienced: %d incidents\n\n", stats.TraumaticEvents)

	if len(stats.KeyEvents) > 0 {
		b.WriteString("Defining Moments:\n")
		events := stats.KeyEvents
		if len(events) > 7 {
			events = events[len(events)-7:]
		}
		for _, e := range events {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	switch {
	case player.Migrant != nil:
		m := player.Migrant
		motivation := m.Motivation
		if i := strings.Index(motivation, ". "); i >= 0 {
			motivation = motivation[i+2:]
		}
		fmt.Fprintf(&b, "You began in %s driven by %s.\n", m.Origin, motivation)

		fmt.Fprintf(&b, "Hope: [%s] %d/100\n", statBar(m.Hope), m.Hope)
		switch {
		case m.Hope > 70:
			b.WriteString("Despite the hardships, your spirit remains unbroken.\n")
		case m.Hope > 30:
			b.WriteString("The journey has taken its toll, but you persist.\n")
		default:
			b.WriteString("The weight of the journey has left deep scars on your soul.\n")
		}

		if m.Trauma > 0 {
			fmt.Fprintf(&b, "Trauma: [%s] %d/100\n", statBar(m.Trauma), m.Trauma)
			switch {
			case m.Trauma > 70:
				b.WriteString("Some wounds never heal. The borderlands have marked you forever.\n")
			case m.Trauma > 30:
				b.WriteString("What you've witnessed will stay with you, a shadow over future days.\n")
			default:
				b.WriteString("You carry the memories of the crossing, but they do not define you.\n")
			}
		}

	case player.Agent != nil:
		a := player.Agent
		fmt.Fprintf(&b, "After %d years of service, the border has shaped your perspective.\n", a.YearsOfService)

		fmt.Fprintf(&b, "Moral Compass: [%s] %d/100\n", statBar(a.MoralCompass), a.MoralCompass)
		switch {
		case a.MoralCompass > 70:
			b.WriteString("You've maintained your humanity while upholding the law.\n")
		case a.MoralCompass > 40:
			b.WriteString("The job has forced you to make difficult compromises.\n")
		default:
			b.WriteString("The border has changed you in ways you never expected.\n")
		}

		fmt.Fprintf(&b, "Stress Level: [%s] %d/100\n", statBar(a.Stress), a.Stress)
		switch {
		case a.Stress > 70:
			b.WriteString("The psychological toll of enforcement has left you burned out.\n")
		case a.Stress > 40:
			b.WriteString("You cope with the stress through compartmentalization.\n")
		default:
			b.WriteString("You've managed to maintain your equilibrium despite the challenges.\n")
		}
	}

	fmt.Fprintf(&b, "\nReflection:\n%s\n", p.Quote())
	return b.String()
}

// Intro returns the opening text shown before the first turn.
func (p *Provider) Intro(startingLocation string) string {
	return fmt.Sprintf(`╔════════════════════════════════════════════════════════════╗
║             THE LINE: A BORDER JOURNEY                     ║
╚════════════════════════════════════════════════════════════╝

The border is not just a line on a map. It's a place where lives intersect,
where dreams and desperation collide with policy and duty.

In this narrative experience, you will walk in the footsteps of those who
cross the border and those who patrol it. Your choices will shape your
journey and reveal the complex human stories behind headlines.

The border leaves its mark on all who encounter it - those who cross it,
those who enforce it, and those who live in its shadow.

Every choice you make will test your humanity, your resolve, and your moral compass.
There are no easy answers here, only human stories unfolding in the borderlands.

Your journey begins in %s.`, startingLocation)
}

// Ending renders the epilogue for how the journey ended, the player's
// personal reflections, and a closing quote.
func (p *Provider) Ending(endingType string, player *character.Character) string {
	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                       EPILOGUE                             ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")

	b.WriteString(p.epilogue(endingType, player))

	b.WriteString("\n---YOUR JOURNEY---\n")
	if player.Migrant != nil {
		m := player.Migrant
		switch {
		case m.Hope > 70:
			fmt.Fprintf(&b, "Despite everything, %s maintained hope throughout the journey.\n", player.Name)
		case m.Hope > 30:
			fmt.Fprintf(&b, "The journey took its toll on %s's spirit, but did not break it entirely.\n", player.Name)
		default:
			fmt.Fprintf(&b, "The border crossing destroyed much of what made %s who they were.\n", player.Name)
		}
		if m.Trauma > 70 {
			fmt.Fprintf(&b, "The psychological scars of this journey will remain with %s forever.\n", player.Name)
		} else if m.Trauma > 30 {
			fmt.Fprintf(&b, "%s witnessed things no person should have to see.\n", player.Name)
		}
		if player.HasFlag("helped_family") {
			fmt.Fprintf(&b, "%s's compassion toward others revealed true character in crisis.\n", player.Name)
		}
		if player.HasFlag("abandoned_family") || player.HasFlag("abandoned_injured") {
			fmt.Fprintf(&b, "The harsh choices %s made in the desert will haunt memories for years to come.\n", player.Name)
		}
	} else if player.Agent != nil {
		a := player.Agent
		switch {
		case a.MoralCompass > 70:
			fmt.Fprintf(&b, "%s maintained humanity while upholding the duties of the badge.\n", player.Name)
		case a.MoralCompass > 40:
			fmt.Fprintf(&b, "The job forced %s to make compromises, but not to surrender principles entirely.\n", player.Name)
		default:
			fmt.Fprintf(&b, "The border changed %s in profound and troubling ways.\n", player.Name)
		}
		if a.Stress > 70 {
			fmt.Fprintf(&b, "The psychological burden of border enforcement has taken a severe toll on %s.\n", player.Name)
		} else if a.Stress > 40 {
			fmt.Fprintf(&b, "%s carries the weight of difficult decisions made in impossible situations.\n", player.Name)
		}
		if player.HasFlag("broke_rules_for_compassion") {
			fmt.Fprintf(&b, "%s chose humanity over protocol when it mattered most.\n", player.Name)
		}
		if player.HasFlag("reported_misconduct") {
			fmt.Fprintf(&b, "%s stood against corruption and abuse, regardless of personal cost.\n", player.Name)
		}
	}

	fmt.Fprintf(&b, "\nReflection:\n%s\n", p.Quote())
	b.WriteString("\nRemember that real people make these journeys every day.\n")
	return b.String()
}

func (p *Provider) epilogue(endingType string, player *character.Character) string {
	name := player.Name
	switch {
	case endingType == EndingSuccess && player.Migrant != nil:
		return fmt.Sprintf(`%s has reached Tucson, but the journey is far from over.

Like many migrants who cross the border, a new struggle begins - finding work,
avoiding detection, building a life in the shadows. Success is relative in a
system designed to marginalize those without documentation.

The physical crossing was just the beginning. The psychological border will
remain for years - the division between new life and old, between
belonging and existing on the periphery.

The border divides the past from the future, and %s now lives in that
divide, carrying memories of home while forging an uncertain future.
`, name, name)

	case endingType == EndingSuccess:
		return fmt.Sprintf(`%s completes another patrol rotation, returning to the station with
a complicated mix of pride and doubt.

The border remains as it always has been - a place where policy meets humanity,
where abstract debates in distant capitals become flesh and blood realities.

Today's successes will be forgotten in tomorrow's challenges. The desert
will continue to claim lives, migrants will continue to cross, and agents
like %s will continue to navigate the impossible space between
law and compassion.

Border work changes those who undertake it, often in ways they never anticipated.
`, name, name)

	case endingType == EndingDetained:
		return fmt.Sprintf(`In detention, %s becomes one of thousands processed through
America's immigration system - a complex bureaucracy of holding cells,
paperwork, and uncertain waiting.

Days blend into weeks as %s is moved between facilities,
each identical in their institutional sterility. Dreams of a new life
are replaced by the immediate concern of navigating a system designed
to process rather than understand.

Whether deportation or asylum awaits depends on factors largely outside
%s's control - the specific judge assigned, the capacity of
detention facilities, the political climate, the availability of legal aid.

The individual humanity of migrants is often lost in the machinery of
enforcement and policy, where people become cases and statistics.
`, name, name, name)

	case endingType == EndingDeath:
		return fmt.Sprintf(`%s's journey ends in the borderlands, as it does for hundreds
of migrants each year. The Sonoran Desert has claimed another life.

Perhaps someday, remains will be discovered - bones bleached by the sun,
personal items scattered by animals and the elements. Perhaps a cross
will mark the spot, one of many dotting the landscape like stars in a
constellation of loss.

Or perhaps %s will simply become one of the disappeared,
another name on the lists of the missing that families circulate in
shelters and migrant support centers.

Such remains are grim reminders of the human cost of border policies and
the desperate circumstances that drive people to risk everything for the
chance at a different life.
`, name, name)

	case endingType == EndingTimeout:
		return fmt.Sprintf(`Resources depleted, strength gone, %s's journey cannot continue.

Stranded in the borderlands, each option more impossible than the last,
%s must find some way forward with nothing left to give.

The border region is unforgiving to those who miscalculate, who underestimate
the distance, the heat, the time required. Small errors compound into
life-threatening situations with frightening speed.

The border is a place of extremes, where small decisions can have
life-altering consequences, and where the gap between survival and
disaster is often measured in hours rather than days.
`, name, name)

	default:
		return fmt.Sprintf(`%s's journey along the border has ended, but the larger story continues.

Every day, people cross the border seeking better lives. Every day, agents patrol
the line between nations. The complex interplay of policy, duty, desperation, and hope
continues to shape countless lives.

The border is not just a geographical reality but a moral space where humanity
confronts its divisions and contradictions. It exists not just between nations,
but within each person who encounters it.

There are no simple answers to the questions the border raises, only human
stories that deserve to be understood in all their complexity.
`, name)
	}
}
