package seed

// Entry is one book of the built-in sample catalog.
type Entry struct {
	Title       string
	Description string
	Quote       string
}

// Catalog is the fixed sample catalog loaded into an empty store.
var Catalog = []Entry{
	{
		Title:       "Love from God",
		Description: "God will always love us, but God cannot redeem our sins. There are many human sins, including greed, anger, and delusion. God can only watch you make a pact with the devil.",
		Quote:       "In the depths of darkness, even divine love has its limits.",
	},
	{
		Title:       "Pandora",
		Description: "Pandora's Box is not a test from God. But it is just an excuse to crush humans or will the mercy of God be similar to that of the devil?",
		Quote:       "Dion he would pour a sweet wine to begin with and finish with a dark chocolate called Despair",
	},
	{
		Title:       "Divine Shadows",
		Description: "In the twilight between faith and doubt, angels weep for those who dance with demons, finding beauty in the forbidden waltz of good and evil.",
		Quote:       "Sometimes the most divine act is to embrace our shadows.",
	},
	{
		Title:       "Celestial Sins",
		Description: "When heaven's gates close, some find salvation in the arms of fallen angels. A tale of redemption through beautiful damnation.",
		Quote:       "Every saint has a past, every sinner has a future, but some choose to live in the present of both.",
	},
	{
		Title:       "Eternal Night",
		Description: "As the world plunges into perpetual darkness, humanity discovers that light was merely a comforting lie, and truth dwells in shadows.",
		Quote:       "In eternal night, we finally see clearly.",
	},
	{
		Title:       "Sacred Poison",
		Description: "A chalice filled with divine venom, offered as both curse and cure. Those who drink seek enlightenment through sweet corruption.",
		Quote:       "The sweetest poison comes with a blessing.",
	},
	{
		Title:       "Hell's Mercy",
		Description: "When heaven shows no mercy, hell opens its arms with understanding. A story of finding compassion in the most unlikely places.",
		Quote:       "Sometimes hell's mercy burns sweeter than heaven's justice.",
	},
	{
		Title:       "Angelic Corruption",
		Description: "Angels who taste sin find it sweeter than ambrosia. Their fall from grace becomes a willing descent into beautiful darkness.",
		Quote:       "Even angels dream of tasting forbidden fruits.",
	},
	{
		Title:       "Devil's Prayer",
		Description: "In a world where prayers go unanswered, some find solace in darker devotions. A tale of faith found in faithlessness.",
		Quote:       "The devil listens when God is silent.",
	},
	{
		Title:       "Blessed Darkness",
		Description: "Those who walk in darkness carry light within their souls. A paradoxical journey of finding divinity in the absence of light.",
		Quote:       "In darkness, we are all blessed with truth.",
	},
	{
		Title:       "Heaven's Exile",
		Description: "Cast out from paradise, some souls build their own heaven in hell. A story of creating beauty in banishment.",
		Quote:       "Paradise lost becomes paradise found in exile.",
	},
	{
		Title:       "Divine Madness",
		Description: "The thin line between divine inspiration and beautiful madness blurs as mortals dance with cosmic truths.",
		Quote:       "Madness is divinity unbound by mortal understanding.",
	},
	{
		Title:       "Sinner's Gospel",
		Description: "A new testament written in the ink of the fallen, where salvation comes through embracing our darkest truths.",
		Quote:       "Every sinner writes their own gospel in the end.",
	},
	{
		Title:       "Sacred Darkness",
		Description: "In the absence of light, some find their most sacred truths. A journey through the holiness of shadow.",
		Quote:       "Darkness holds secrets too sacred for light.",
	},
	{
		Title:       "Demon's Lullaby",
		Description: "Sweet songs sung by fallen angels become lullabies for the damned, bringing peace to tortured souls.",
		Quote:       "Even demons sing songs of love.",
	},
	{
		Title:       "Cursed Blessings",
		Description: "Some blessings come disguised as curses, teaching us that divine favor often wears a demon's mask.",
		Quote:       "The most powerful blessings often feel like curses at first.",
	},
	{
		Title:       "Infernal Grace",
		Description: "Grace flows like liquid fire through the veins of the damned, burning away illusions of righteousness.",
		Quote:       "Grace burns brightest in hell's depths.",
	},
	{
		Title:       "Prophet's Doom",
		Description: "When prophets speak of doom, some hear whispers of liberation. A tale of finding freedom in fateful endings.",
		Quote:       "In doom, we find our ultimate freedom.",
	},
	{
		Title:       "Hallowed Hell",
		Description: "Hell becomes holy ground for those who find truth in suffering. A story of sanctifying the profane.",
		Quote:       "Even hell can be hallowed by honest souls.",
	},
	{
		Title:       "Divine Tragedy",
		Description: "In the grand theatre of existence, tragedy becomes divine when embraced with open arms and an understanding heart.",
		Quote:       "Every divine comedy begins as a tragedy.",
	},
}
