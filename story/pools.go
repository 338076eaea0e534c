package story

import (
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/types"
)

var quotes = []string{
	"The border is a place characterized by flux and tension, a landscape of convergence where the realities of two nations meet.",
	"We are trapped in a system that has no regard for humanity.",
	"There are days when I feel I am becoming good at what I do. And then I wonder, what does it mean to be good at this?",
	"The border divides the past from the future, and we stand always in its present shadow.",
	"Each body recovered from the desert has a story, a dream that ended too soon.",
	"The border makes ghosts of us all - those who cross, those who guard, those who never return.",
	"In the end, we're all just people trying to do what we believe is right.",
	"Some wounds never heal; they just become part of who we are.",
	"The line on the map means nothing to the birds that fly above it, or the plants that grow across it, or the animals that wander over it.",
	"Policy becomes human when it meets flesh and bone in the borderlands.",
	"Dreams are the true currency of the border economy, more precious than dollars or pesos.",
	"The desert has no allegiance to either side of the line; it claims victims without discrimination.",
}

var traumaMoments = []TraumaMoment{
	{
		Description: "You discover human remains in the desert - a grim reminder of the journey's dangers.",
		Reflection:  "Death becomes real here. Not an abstract concept, but sun-bleached bones and faded dreams.",
	},
	{
		Description: "You witness cartel violence against migrants who couldn't pay their fees.",
		Reflection:  "The border creates its own economy of desperation, where human life has a price tag.",
	},
	{
		Description: "A child in your group falls ill with a high fever, crying through the night.",
		Reflection:  "Innocence suffers most at the border. Children bear burdens they cannot understand.",
	},
	{
		Description: "You suffer hallucinations from heat exposure, seeing water where there is only sand.",
		Reflection:  "The desert plays cruel tricks on the mind, offering mirages of salvation.",
	},
	{
		Description: "You're separated from your traveling companions during a patrol encounter.",
		Reflection:  "In an instant, everything can change. People disappear into the machinery of enforcement.",
	},
	{
		Description: "You help rescue a migrant trapped in a drainage tunnel during flash flooding.",
		Reflection:  "Even in moments of crisis, humanity can bridge the divide between roles and rules.",
	},
	{
		Description: "You encounter evidence of sexual assault at a known migrant rest area.",
		Reflection:  "Vulnerability is exploited at every turn. The border strips away protections most take for granted.",
	},
	{
		Description: "A migrant dies of dehydration despite your attempts to help them.",
		Reflection:  "Some failures leave permanent marks on the soul. Some debts can never be repaid.",
	},
}

var builtinFlavor = map[character.Kind][]types.FlavorEventDef{
	character.KindMigrant: {
		{Kind: "migrant", Description: "A helicopter spotlight sweeps across your position, forcing you to hide.",
			Flavor: "The mechanical eye in the sky searches the desert. You press your body against the earth, becoming one with the shadow."},
		{Kind: "migrant", Description: "You find an abandoned backpack with supplies.",
			Flavor: "Someone else's journey ended here. Their loss becomes your salvation - a common tragedy of the border."},
		{Kind: "migrant", Description: "Distant gunshots echo through the canyon, raising everyone's anxiety.",
			Flavor: "The sound bounces between rock walls, impossible to locate. You freeze, calculating risks and routes."},
		{Kind: "migrant", Description: "You discover a hidden water cache left by humanitarian aid workers.",
			Flavor: "Plastic jugs of water, placed with intention. Small acts of compassion flourish even here, where policy fails."},
		{Kind: "migrant", Description: "A dust storm approaches from the horizon, forcing you to seek shelter.",
			Flavor: "The wall of dust devours the landscape. You cover your face and huddle against a rock, waiting for the world to return."},
		{Kind: "migrant", Description: "You spot border patrol vehicles in the distance, patrolling the area.",
			Flavor: "Green and white SUVs move along the ridge. You drop to the ground, counting seconds between their passes, mapping their pattern."},
		{Kind: "migrant", Description: "You find recent footprints heading north, suggesting others passed recently.",
			Flavor: "The footprints tell a story - a group, moving hurriedly but determined. You are not alone in this journey."},
		{Kind: "migrant", Description: "The howl of coyotes fills the night, their cries haunting and familiar.",
			Flavor: "Their voices rise like spirits from the darkness. Predators calling to each other, claiming territory."},
		{Kind: "migrant", Description: "Morning reveals beautiful desert flowers blooming after rare rainfall.",
			Flavor: "Impossibly vibrant colors burst from the harsh landscape. Life finds a way, even here."},
		{Kind: "migrant", Description: "You encounter an elderly indigenous man who offers silent guidance with a nod toward a hidden path.",
			Flavor: "No words pass between you. His eyes hold knowledge of this land that predates all borders."},
	},
	character.KindAgent: {
		{Kind: "patrol", Description: "You receive reports of cartel activity nearby, increasing tension in your unit.",
			Flavor: "The radio crackles with coded warnings. Cartel scouts watching patrol patterns, waiting for opportunities."},
		{Kind: "patrol", Description: "Your radio crackles with reports of multiple crossings, stretching resources thin.",
			Flavor: "Coordinates flood the channel. Too many locations, too few agents. The system strains under pressure."},
		{Kind: "patrol", Description: "You find evidence of human trafficking - discarded women's clothing and restraints.",
			Flavor: "The items tell a story you don't want to read. The border economy trades in human cargo."},
		{Kind: "patrol", Description: "A migrant family surrenders to your unit, the children crying from exhaustion.",
			Flavor: "They approach with hands raised. The father speaks clearly: 'Asylum. Please. We seek asylum.'"},
		{Kind: "patrol", Description: "You discover a sophisticated tunnel entrance hidden beneath an abandoned structure.",
			Flavor: "The entrance is expertly concealed. Millions of dollars of engineering to bypass a multi-billion dollar wall."},
		{Kind: "patrol", Description: "Your thermal imaging detects movement ahead - a group moving through the night.",
			Flavor: "Ghost-like heat signatures move across your screen. Nameless, faceless - until they aren't."},
		{Kind: "patrol", Description: "You find an abandoned vehicle with supplies and multiple fake IDs.",
			Flavor: "The SUV is still warm, recently abandoned. The documents show different faces with the same eyes."},
		{Kind: "patrol", Description: "A fellow agent requests immediate backup after encountering armed smugglers.",
			Flavor: "Their voice is controlled but tight with tension. Protocol and training take over as you respond."},
		{Kind: "patrol", Description: "Local ranchers report water tanks damaged by desperate migrants.",
			Flavor: "The rancher's face is sunburned and angry. 'Those tanks were for my cattle. Now everything's dying.'"},
		{Kind: "patrol", Description: "You find a child's teddy bear dropped in the desert, a silent testimony to invisible journeys.",
			Flavor: "Small, worn, carried from one life toward another. You place it in your vehicle. What else can you do?"},
	},
}

var migrantToPatrol = []string{
	"Please... my children haven't eaten in days. We had no choice but to leave.",
	"I know you're just doing your job. But can you look at me and see a human being, not just another case number?",
	"Send me back if you must, but please, let me keep my dignity.",
	"You wear that uniform, but I see the conflict in your eyes. You understand, don't you?",
	"I've buried friends in this desert. How many more must die before something changes?",
	"In my hometown, the cartels run everything now. Return means death. Do you understand that?",
	"I would have come legally if there was a way. The waitlist is years long. My need is now.",
	"What would you do if it was your family in danger? If your children were hungry?",
	"We don't want to break laws. We want to work, to contribute, to build something.",
}

var patrolToPatrol = []string{
	"Found a child's backpack yesterday. Pink, with butterflies. Still had a family photo inside...",
	"We're supposed to be protecting the border, but sometimes I wonder what we're really protecting.",
	"The desert doesn't discriminate. It takes from both sides of the line.",
	"Some nights, I still hear their voices. The ones we couldn't save.",
	"New directive from headquarters. More paperwork, less practical support. Typical.",
	"My family doesn't ask about work anymore. They know I can't bring that home.",
	"We're the face of a policy we didn't create. Easy to criticize when you're not out here.",
	"Rescued a group last week. Three dehydrated, one with heat stroke. Saved their lives, then processed them for deportation. This job...",
}

var patrolToMigrant = []string{
	"I've seen too many deaths in these borderlands. Please, don't make me witness another.",
	"The law is clear, but the heart... the heart sometimes speaks louder.",
	"I have water if you need it. At least let me do that much.",
	"Every face I send back haunts me. But what choice do I have?",
	"I'm required to take you in. That's the job. But I'll make sure you're treated humanely.",
	"This isn't personal. This is policy. Someone else makes the rules, I just enforce them.",
	"If you surrender now, it's safer. The desert shows no mercy to anyone.",
	"I've found too many bodies out here. Families who will never know what happened to their loved ones.",
}

var genericDialogue = []string{
	"The border draws a line on the map, but the real divisions run deeper.",
	"In the end, we're all just trying to survive this place.",
	"I've seen the best and worst of humanity in these borderlands.",
	"The stories here could fill a thousand books. Most will never be told.",
	"Some say the desert holds the spirits of those who never made it. Some nights, I believe them.",
	"Politics happens far away. Here, it's just people facing the reality those politics create.",
	"Everyone passes through. The desert remains, indifferent to our human dramas.",
	"When you've lived here long enough, you stop seeing sides. You just see people.",
	"The wall is just a symbol. The real barriers are in the laws, in the minds, in the hearts.",
}

var manuelDialogue = []string{
	"I know every wash and ridge for fifty miles. Knowledge that costs money, friend.",
	"Some call me predator, some call me savior. I'm just a businessman in the border economy.",
	"I don't create the demand, friend. I just provide the service. Blame your politicians.",
	"Half my family lives on that side, half on this side. The border runs through our blood.",
}

var locationFlavor = map[types.LocationKind][]string{
	types.KindDesert: {
		"The desert stretches endlessly, a vast graveyard of dreams and desperation.",
		"The sun beats down like judgment from above, while the sand below holds countless untold stories.",
		"Between the saguaros, you glimpse remnants of others' journeys - a child's shoe, a tattered backpack, a rosary.",
		"The wind whispers names of those who never made it, their hopes scattered among sun-bleached bones.",
		"Even the cacti seem to weep here, their shadows stretching like mourners across the sand.",
		"Heat ripples distort the horizon, blurring the line between reality and mirage, between hope and delusion.",
		"The day's heat brands you, while the night's cold cuts to the bone. The desert demands respect.",
		"Time loses meaning here. Only the sun's arc measures the passing hours, indifferent to human suffering.",
		"Each step disturbs dust that may have settled on another traveler's final resting place.",
	},
	types.KindBorder: {
		"The wall rises like an iron curtain, dividing not just land, but dreams, families, and futures.",
		"Surveillance cameras stare with unblinking eyes, while sensors pulse beneath the ground like a mechanical heartbeat.",
		"The air thrums with tension - helicopter rotors above, desperate prayers below.",
		"Here, policy meets humanity in a clash of steel and flesh, law and desperation.",
		"Every footprint in the dust tells a story of choice - to cross, to turn back, to enforce, to defy.",
		"The border wall casts long shadows, both physical and metaphorical, obscuring what lies on either side.",
		"Birds fly across freely, mocking the human obsession with lines drawn on maps.",
		"The barrier stands as a monument to fear - of difference, of change, of the other.",
		"Graffiti marks sections of the wall - names, prayers, political statements. The voiceless finding voice.",
	},
	types.KindSettlement: {
		"The community lives and breathes the border, its rhythms shaped by the ebb and flow of crossings.",
		"In every face you see the weight of choice - to help, to hinder, to look away.",
		"Children play in the shadow of the wall, their laughter a defiant song against the barrier's silence.",
		"The streets hold secrets: safe houses marked with subtle signs, routes whispered in hushed tones.",
		"Even the church bells sound different here, their toll a reminder of lives interrupted, journeys unfinished.",
		"Markets sell necessities for crossing - black water jugs, desert-colored clothing, blister kits.",
		"Aid workers and enforcement officers move through the same spaces, engaged in their parallel missions.",
		"Posters of the missing hang in public spaces - faces frozen in time, families searching for closure.",
		"The economy here revolves around the border - serving those who enforce it, those who cross it, those who study it.",
	},
}

var genericLocationFlavor = []string{
	"{name} pulses with the heartbeat of the borderlands, each moment pregnant with possibility and peril.",
	"The border's gravity pulls at everything here, bending lives like light through a prism.",
	"Time feels different in this place, stretched taut between before and after, between here and there.",
	"The air itself carries stories - of courage and fear, of mercy and indifference, of hope and despair.",
	"In every shadow lurks a choice, in every choice, a story waiting to be told.",
	"History accumulates in layers here - indigenous pathways, colonial boundaries, modern enforcement.",
	"The language of the borderlands is unique - Spanish and English blending into something entirely its own.",
	"There's a particular quality to the light here, harsh yet revealing, exposing what might remain hidden elsewhere.",
	"This place exists in the hyphen between nation-states, a reality unto itself with its own unwritten laws.",
}

var dilemmas = map[character.Kind][]Dilemma{
	character.KindMigrant: {
		{
			Description: "A mother with two young children asks you to help her cross. She doesn't have enough water for all of you.",
			Choices: []string{
				"Share your limited water, putting yourself at greater risk",
				"Advise her to wait for better prepared smugglers",
				"Take only one of her children, promising to send help back",
			},
			Consequences: []DilemmaOutcome{
				{HopeImpact: 10, HealthImpact: -15, Flag: "helped_family", Description: "You share your water. The gratitude in her eyes gives you strength, but the physical toll is significant."},
				{HopeImpact: -10, Flag: "abandoned_family", Description: "You continue alone. Their faces haunt you as you walk away."},
				{HopeImpact: -5, Flag: "split_family", Description: "You take the older child. The mother's tears burn into your memory, but you promise to send help when you can."},
			},
		},
		{
			Description: "You encounter an injured man who can't walk. He begs you not to leave him to die in the desert.",
			Choices: []string{
				"Stay with him, delaying your journey significantly",
				"Try to carry him, slowing your pace dramatically",
				"Mark his location and promise to send help when you reach civilization",
			},
			Consequences: []DilemmaOutcome{
				{HopeImpact: 5, HealthImpact: -5, Flag: "delayed_journey", Description: "You stay with the stranger. Hours pass as you share stories of the homes you both left behind."},
				{HopeImpact: -5, HealthImpact: -20, Flag: "helped_injured", Description: "The weight on your shoulders is immense, but so is the weight that would have been on your conscience."},
				{HopeImpact: -15, Flag: "abandoned_injured", Description: "You mark his location and continue. His voice calling after you fades with distance, but not from memory."},
			},
		},
		{
			Description: "A coyote offers to guide you through cartel territory - a shortcut that would save days but expose you to dangerous people.",
			Choices: []string{
				"Take the risky shortcut, trusting the coyote",
				"Refuse and take the longer, safer route",
				"Negotiate for more security guarantees before deciding",
			},
			Consequences: []DilemmaOutcome{
				{HopeImpact: -10, HealthImpact: -10, Flag: "took_shortcut", Description: "The shortcut saves time but exposes you to dangers. You witness things that cannot be unseen."},
				{HopeImpact: 5, HealthImpact: -15, Flag: "took_long_route", Description: "The longer route tests your endurance but keeps you away from the cartel's eyes."},
				{HopeImpact: 0, HealthImpact: -5, Flag: "negotiated_with_coyote", Description: "Your caution serves you well. The coyote respects your questions, offering more details about the journey."},
			},
		},
		{
			Description: "You find an abandoned backpack containing water, food, and a wallet with $200 and family photos.",
			Choices: []string{
				"Take only the water and food you need",
				"Take everything - you need every advantage",
				"Leave it undisturbed - its owner might return",
			},
			Consequences: []DilemmaOutcome{
				{HopeImpact: 5, HealthImpact: 10, Flag: "took_necessities", Description: "You take only what you need to survive. The moral compromise weighs less than what you might have taken."},
				{HopeImpact: -5, HealthImpact: 15, Flag: "took_everything", Description: "The resources will help you survive, but the face in the family photo haunts your dreams."},
				{HopeImpact: 10, HealthImpact: -5, Flag: "left_backpack", Description: "You continue with empty hands but a full heart, hoping whoever lost these things finds them again."},
			},
		},
	},
	character.KindAgent: {
		{
			Description: "You discover a group of migrants including children suffering from severe dehydration. Calling for medical transport will mean processing and likely deportation.",
			Choices: []string{
				"Follow protocol: call for medical assistance and process them",
				"Give them water and medical aid, then let them go",
				"Call medical assistance but 'lose' their paperwork in the system",
			},
			Consequences: []DilemmaOutcome{
				{MoralImpact: 0, StressImpact: 10, Flag: "followed_protocol", Description: "You follow procedure. The children receive medical care, but their terrified eyes follow you as they're processed."},
				{MoralImpact: 15, StressImpact: 15, Flag: "broke_rules_for_compassion", Description: "You choose humanity over protocol. They disappear into the desert, their gratitude the only witness to your choice."},
				{MoralImpact: 5, StressImpact: 20, Flag: "bent_rules", Description: "You navigate the gray areas of the system. The paperwork is conveniently delayed, giving them time to recover before decisions must be made."},
			},
		},
		{
			Description: "You witness a fellow agent using excessive force on a cooperative migrant. Your supervisor seems unconcerned when others have reported similar incidents.",
			Choices: []string{
				"Report the incident through official channels despite potential backlash",
				"Confront the agent privately about their behavior",
				"Stay silent to avoid making enemies within the department",
			},
			Consequences: []DilemmaOutcome{
				{MoralImpact: 20, StressImpact: 25, Flag: "reported_misconduct", Description: "You file the report, knowing it may cost you professionally. Some colleagues avoid you in the break room."},
				{MoralImpact: 10, StressImpact: 15, Flag: "confronted_colleague", Description: "The conversation is tense, but you speak your truth. The relationship is strained, but perhaps a seed was planted."},
				{MoralImpact: -15, StressImpact: 5, Flag: "ignored_misconduct", Description: "You say nothing. Life continues as normal, except for the moments you catch your reflection and look away."},
			},
		},
		{
			Description: "You find a severely injured migrant who crossed recently. He has information about a dangerous smuggling operation, but needs immediate medical care.",
			Choices: []string{
				"Focus on getting his smuggling information before seeking medical help",
				"Prioritize medical care, potentially losing valuable intelligence",
				"Radio for both medical assistance and backup simultaneously",
			},
			Consequences: []DilemmaOutcome{
				{MoralImpact: -20, StressImpact: 15, Flag: "prioritized_intelligence", Description: "You get the information, but his condition worsens. The intelligence could save lives, but at what cost?"},
				{MoralImpact: 15, StressImpact: 5, Flag: "prioritized_care", Description: "You focus on saving his life. The smugglers may continue operating, but you sleep without this particular weight on your conscience."},
				{MoralImpact: 5, StressImpact: 10, Flag: "balanced_approach", Description: "You attempt to balance duty and humanity. The juggling act is imperfect, but you try your best in an impossible situation."},
			},
		},
		{
			Description: "You're ordered to separate a young child from their parents due to documentation issues, following a new policy you personally disagree with.",
			Choices: []string{
				"Follow orders despite your moral objections",
				"Refuse the order and face potential disciplinary action",
				"Find a procedural loophole to keep the family together",
			},
			Consequences: []DilemmaOutcome{
				{MoralImpact: -25, StressImpact: 30, Flag: "followed_immoral_orders", Description: "You follow orders. The child's screams as they're pulled from their mother's arms will echo in your mind for years."},
				{MoralImpact: 25, StressImpact: 20, Flag: "refused_orders", Description: "You stand your ground. Your supervisor is furious, but the family remains together - for now."},
				{MoralImpact: 10, StressImpact: 15, Flag: "found_loophole", Description: "You find a technicality in the processing forms. It won't work forever, but it buys the family time together."},
			},
		},
	},
}

var weatherConditions = []types.Weather{
	{
		Name:        "Scorching Heat",
		Description: "The sun beats down mercilessly, creating heat mirages on the horizon.",
		Effects:     types.WeatherEffects{WaterDrain: 2.0},
	},
	{
		Name:        "Dust Storm",
		Description: "Fine particles fill the air, reducing visibility and making each breath a struggle.",
		Effects:     types.WeatherEffects{Visibility: floatp(0.3)},
	},
	{
		Name:        "Desert Night",
		Description: "Temperature drops dramatically after sunset, the cold seeping into your bones.",
		Effects:     types.WeatherEffects{Temperature: "cold", Visibility: floatp(0.5)},
	},
	{
		Name:        "Monsoon Rain",
		Description: "Sudden downpours transform dry washes into raging torrents within minutes.",
		Effects:     types.WeatherEffects{WaterDrain: 0.5, Terrain: "muddy"},
	},
	{
		Name:        "Clear Skies",
		Description: "Perfect visibility makes navigation easier, but also increases the risk of being spotted.",
		Effects:     types.WeatherEffects{Visibility: floatp(1.0)},
	},
}

func floatp(f float64) *float64 { return &f }
