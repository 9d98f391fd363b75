// data/prompts.go
package data

// GlobalPrompts is the pool the daily global prompt is drawn from.
var GlobalPrompts = []string{
	"Golden hour",
	"Something that made you smile today",
	"Your view right now",
	"Reflections",
	"A stranger's story",
	"The color red",
	"Breakfast, but make it art",
	"Shadows and light",
	"Something older than you",
	"Motion blur",
	"Your commute",
	"Looking up",
	"Hands at work",
	"Rain or shine",
	"The smallest thing you noticed today",
	"Symmetry",
	"A door you've never opened",
	"Texture up close",
	"Neon and night",
	"Where you'd rather be",
}

// GroupPrompts is the pool for group contests. Kept separate from the global
// pool so group prompts can skew personal.
var GroupPrompts = []string{
	"What's on your desk?",
	"Today's sky",
	"Your lunch, unfiltered",
	"The last place you sat down",
	"Pets or plants",
	"Something borrowed",
	"Your shoes today",
	"The inside of your fridge",
	"Whatever is to your left",
	"A guilty pleasure",
	"Your happy place",
	"The most chaotic corner of your home",
	"Something you should have thrown away",
	"Your current obsession",
	"The oldest photo-worthy thing you own",
}
