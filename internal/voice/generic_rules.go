package voice

// Matching constants shared by both catalogs.
const (
	exampleClueBonus    = 0.2
	confidenceThreshold = 0.3

	genericMaxPatterns = 5
	videoMaxPatterns   = 4
)

// genericStyleRules is the static rule table for scraped website content.
// Keywords carry the base score; example clues are longer marketing phrases
// that bump confidence when present.
var genericStyleRules = []StyleRule{
	{
		Name:     "Professional and Formal",
		Keywords: []string{"professional", "expertise", "industry", "solutions", "excellence"},
		ExampleClues: []string{
			"proven track record", "industry-leading", "commitment to quality",
			"trusted partner", "best practices",
		},
	},
	{
		Name:     "Friendly and Warm",
		Keywords: []string{"welcome", "friendly", "community", "together", "care"},
		ExampleClues: []string{
			"we're here to help", "join our family", "your satisfaction",
			"feel at home", "we love",
		},
	},
	{
		Name:     "Innovative and Modern",
		Keywords: []string{"innovative", "cutting-edge", "technology", "future", "transform"},
		ExampleClues: []string{
			"state-of-the-art", "next generation", "revolutionary",
			"breakthrough", "digital transformation",
		},
	},
	{
		Name:     "Authentic and Genuine",
		Keywords: []string{"authentic", "honest", "transparent", "genuine", "values"},
		ExampleClues: []string{
			"our story", "handcrafted", "true to our roots",
			"no shortcuts", "down to earth",
		},
	},
	{
		Name:     "Energetic and Dynamic",
		Keywords: []string{"exciting", "dynamic", "energy", "bold", "action"},
		ExampleClues: []string{
			"get started", "unleash", "make it happen",
			"ready to go", "power up",
		},
	},
	{
		Name:     "Luxury and Sophisticated",
		Keywords: []string{"luxury", "premium", "exclusive", "elegance", "refined"},
		ExampleClues: []string{
			"finest quality", "bespoke", "five-star",
			"timeless elegance", "unparalleled",
		},
	},
}

// GenericCatalog matches scraped website content. Immutable after init.
var GenericCatalog = NewCatalog("generic", genericStyleRules, confidenceThreshold, genericMaxPatterns)
