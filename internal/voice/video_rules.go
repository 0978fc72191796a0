package voice

// videoToneRules is the static rule table for video subtitle text. These
// lean on spoken-register vocabulary rather than marketing copy.
var videoToneRules = []StyleRule{
	{
		Name:     "Enthusiastic and Exciting",
		Keywords: []string{"amazing", "awesome", "incredible", "excited", "unbelievable"},
		ExampleClues: []string{
			"can't wait", "blow your mind", "so excited",
			"you guys", "let's go",
		},
	},
	{
		Name:     "Educational and Helpful",
		Keywords: []string{"learn", "tutorial", "guide", "explain", "understand"},
		ExampleClues: []string{
			"in this video", "how to", "let me show you",
			"step by step", "by the end",
		},
	},
	{
		Name:     "Fun and Entertaining",
		Keywords: []string{"fun", "funny", "hilarious", "crazy", "laugh"},
		ExampleClues: []string{
			"you won't believe", "wait for it", "just for fun",
			"epic", "good times",
		},
	},
	{
		Name:     "Professional and Authoritative",
		Keywords: []string{"research", "data", "analysis", "expert", "evidence"},
		ExampleClues: []string{
			"according to", "studies show", "the data shows",
			"in my experience", "proven",
		},
	},
	{
		Name:     "Personal and Authentic",
		Keywords: []string{"honest", "personal", "story", "journey", "share"},
		ExampleClues: []string{
			"my story", "to be honest", "real talk",
			"i want to share", "from the heart",
		},
	},
	{
		Name:     "Informative and Analytical",
		Keywords: []string{"overview", "review", "compare", "breakdown", "detail"},
		ExampleClues: []string{
			"let's break down", "key takeaways", "pros and cons",
			"in summary", "deep dive",
		},
	},
}

// VideoToneCatalog matches video subtitle text. Immutable after init.
var VideoToneCatalog = NewCatalog("video_tone", videoToneRules, confidenceThreshold, videoMaxPatterns)
