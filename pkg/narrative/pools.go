package narrative

import (
	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/scenario"
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
}

var traumaEvents = []string{
	"Finding remains in the desert",
	"Witnessing cartel violence",
	"Separation from loved ones",
	"Near-death from exposure",
	"Discovering abandoned children",
	"Encountering human trafficking victims",
	"Witnessing a fatal accident",
	"Finding evidence of torture",
}

var randomEvents = map[actor.Kind][]string{
	actor.KindMigrant: {
		"A helicopter spotlight sweeps across your position",
		"You find an abandoned backpack with supplies",
		"Distant gunshots echo through the canyon",
		"You discover a hidden water cache",
		"A dust storm approaches from the horizon",
		"You spot border patrol vehicles in the distance",
		"You find recent footprints heading north",
		"The howl of coyotes fills the night",
	},
	actor.KindBorderPatrol: {
		"You receive reports of cartel activity nearby",
		"Your radio crackles with reports of multiple crossings",
		"You find evidence of human trafficking",
		"A migrant family surrenders to your unit",
		"You discover a sophisticated tunnel entrance",
		"Your thermal imaging detects movement ahead",
		"You find an abandoned vehicle with supplies",
		"A fellow agent requests immediate backup",
	},
}

// {name} is replaced with the location name.
var locationLines = map[scenario.LocationKind][]string{
	scenario.LocationDesert: {
		"The desert stretches endlessly, a vast graveyard of dreams and desperation.",
		"The sun beats down like judgment from above, while the sand below holds countless untold stories.",
		"Between the saguaros, you glimpse remnants of others' journeys - a child's shoe, a tattered backpack, a rosary.",
		"The wind whispers names of those who never made it, their hopes scattered among sun-bleached bones.",
		"Even the cacti seem to weep here, their shadows stretching like mourners across the sand.",
	},
	scenario.LocationBorder: {
		"The wall rises like an iron curtain, dividing not just land, but dreams, families, and futures.",
		"Surveillance cameras stare with unblinking eyes, while sensors pulse beneath the ground like a mechanical heartbeat.",
		"The air thrums with tension - helicopter rotors above, desperate prayers below.",
		"Here, policy meets humanity in a clash of steel and flesh, law and desperation.",
		"Every footprint in the dust tells a story of choice - to cross, to turn back, to enforce, to defy.",
	},
	scenario.LocationSettlement: {
		"The community lives and breathes the border, its rhythms shaped by the ebb and flow of crossings.",
		"In every face you see the weight of choice - to help, to hinder, to look away.",
		"Children play in the shadow of the wall, their laughter a defiant song against the barrier's silence.",
		"The streets hold secrets: safe houses marked with subtle signs, routes whispered in hushed tones.",
		"Even the church bells sound different here, their toll a reminder of lives interrupted, journeys unfinished.",
	},
	scenario.LocationBase: {
		"{name} pulses with the heartbeat of the borderlands, each moment pregnant with possibility and peril.",
		"The border's gravity pulls at everything here, bending lives like light through a prism.",
		"Time feels different in this place, stretched taut between before and after, between here and there.",
		"The air itself carries stories - of courage and fear, of mercy and indifference, of hope and despair.",
		"In every shadow lurks a choice, in every choice, a story waiting to be told.",
	},
}

type pairing struct {
	speaker actor.Kind
	player  actor.Kind
}

// Dialogue templates. {origin}, {family} and {years} come from the
// speaker. Lines whose placeholder has no value are skipped.
var dialogue = map[pairing][]string{
	{actor.KindMigrant, actor.KindMigrant}: {
		"We're all trying to find a better life. I'm from {origin}. The violence there... it changes you.",
		"Each step north carries the weight of those we left behind. But we must keep moving.",
		"I saw someone collapse from dehydration yesterday. The Border Patrol found them... I don't know if they survived.",
		"My {family} back home... they're all I think about. Their faces keep me going.",
		"Sometimes I wonder if we're just chasing shadows across the desert.",
	},
	{actor.KindMigrant, actor.KindBorderPatrol}: {
		"Please... my children haven't eaten in days. We had no choice but to leave.",
		"I know you're just doing your job. But can you look at me and see a human being, not just another case number?",
		"Send me back if you must, but please, let me keep my dignity.",
		"You wear that uniform, but I see the conflict in your eyes. You understand, don't you?",
		"I've buried friends in this desert. How many more must die before something changes?",
	},
	{actor.KindBorderPatrol, actor.KindBorderPatrol}: {
		"Been doing this {years} years now. Each year, the weight gets heavier.",
		"Found a child's backpack yesterday. Pink, with butterflies. Still had a family photo inside...",
		"We're supposed to be protecting the border, but sometimes I wonder what we're really protecting.",
		"The desert doesn't discriminate. It takes from both sides of the line.",
		"Some nights, I still hear their voices. The ones we couldn't save.",
	},
	{actor.KindBorderPatrol, actor.KindMigrant}: {
		"I've seen too many deaths in these borderlands. Please, don't make me witness another.",
		"The law is clear, but the heart... the heart sometimes speaks louder.",
		"I have water if you need it. At least let me do that much.",
		"Every face I send back haunts me. But what choice do I have?",
		"My own grandparents crossed this same desert. The irony isn't lost on me.",
	},
}

var genericDialogue = []string{
	"The border draws a line on the map, but the real divisions run deeper.",
	"In the end, we're all just trying to survive this place.",
	"I've seen the best and worst of humanity in these borderlands.",
	"The stories here could fill a thousand books. Most will never be told.",
	"Some say the desert holds the spirits of those who never made it. Some nights, I believe them.",
}

const introText = `The border is not just a line on a map. It's a place where lives intersect,
where dreams and desperation collide with policy and duty.

In this narrative experience, you will walk in the footsteps of those who
cross the border and those who patrol it. Your choices will shape your
journey and reveal the complex human stories behind headlines.

As Francisco Cantú writes in 'The Line Becomes a River', the border leaves
its mark on all who encounter it - those who cross it, those who enforce it,
and those who live in its shadow.`

const titleBanner = `╔════════════════════════════════════════════════════════════╗
║                                                            ║
║                      THE LINE                              ║
║                  A Border Journey                          ║
║                                                            ║
║          Inspired by 'The Line Becomes a River'            ║
║                  by Francisco Cantú                        ║
║                                                            ║
╚════════════════════════════════════════════════════════════╝`

const welcomeText = `Welcome to 'The Line: A Border Journey'

This game explores the human stories and moral complexities of border
migration through interactive storytelling.`

var epilogues = map[string]string{
	"success": `You've made it to Tucson, but your journey is far from over. Like many migrants
who cross the border, you now face the challenges of building a life in a new country.

Some find opportunity and safety, others face continued hardship and the constant
fear of deportation. The border crossing was just the beginning of a longer journey.

As Francisco Cantú writes, the border leaves its mark on all who encounter it - those who
cross it, those who enforce it, and those who live in its shadow.`,

	"detained": `In detention, you become one of thousands processed through America's immigration system.
Your future is uncertain - you may be deported, or you may be granted asylum.

The system is complex and often arbitrary. Your story, your reasons for crossing,
become reduced to paperwork and case numbers.

As Cantú observed during his time in Border Patrol, the individual humanity of migrants
is often lost in the machinery of enforcement and policy.`,

	"death": `Your journey ends in the borderlands, as it does for hundreds of migrants each year.
The desert is an unforgiving place, and the border crossing claims many lives.

These deaths often go unnoticed by the wider world. A cross in the desert, perhaps,
or a body never found.

Cantú writes of finding the remains of those who didn't make it, a grim reminder of
the human cost of border policies and the desperate circumstances that drive people
to risk everything.`,

	"timeout": `Your resources depleted, your strength gone, your journey cannot continue.
The border region has claimed another victim of its harsh realities.

The journey across the border is not just a physical one, but a test of
endurance, will, and luck. Not everyone makes it through.

As Cantú's book shows us, the border is a place of extremes, where small
decisions can have life-altering consequences.`,

	"general": `Your journey along the border has ended, but the larger story continues.

Every day, people cross the border seeking better lives. Every day, agents patrol
the line between nations. The complex interplay of policy, duty, desperation, and hope
continues to shape countless lives.

As 'The Line Becomes a River' shows us, there are no simple answers to the questions
the border raises, only human stories that deserve to be understood in all their complexity.`,
}

const closingText = `Thank you for experiencing 'The Line: A Border Journey'.
This narrative was inspired by 'The Line Becomes a River' by Francisco Cantú.`
