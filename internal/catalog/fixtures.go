package catalog

// Reels is the demo reel catalog. Order matters: it is the curation order
// the feed falls back to when scores tie.
var Reels = []ContentItem{
	{
		ID:               "r1",
		Title:            "Quick Algebra Trick",
		CreatorName:      "Maya Chen",
		CreatorID:        "maya_chen",
		Topic:            "Mathematics",
		Difficulty:       DifficultyBeginner,
		DurationLabel:    "0:45",
		ExternalVideoRef: "https://www.youtube.com/watch?v=BJXAx9P9C5Y",
		LikeCount:        1240,
		SaveCount:        410,
	},
	{
		ID:               "r2",
		Title:            "DNA in 90 Seconds",
		CreatorName:      "Dr. Amir",
		CreatorID:        "dr_amir",
		Topic:            "Biology",
		Difficulty:       DifficultyIntermediate,
		DurationLabel:    "1:30",
		ExternalVideoRef: "https://www.youtube.com/watch?v=6R4KY0Kq5ew",
		LikeCount:        980,
		SaveCount:        360,
	},
	{
		ID:               "r3",
		Title:            "Design Thinking Crash",
		CreatorName:      "UX Lab",
		CreatorID:        "ux_lab",
		Topic:            "Design",
		Difficulty:       DifficultyBeginner,
		DurationLabel:    "0:55",
		ExternalVideoRef: "https://www.youtube.com/watch?v=Q80Xvk_wscI",
		LikeCount:        1750,
		SaveCount:        680,
	},
	{
		ID:               "r4",
		Title:            "Python List Tricks",
		CreatorName:      "CodePulse",
		CreatorID:        "codepulse",
		Topic:            "Programming",
		Difficulty:       DifficultyIntermediate,
		DurationLabel:    "1:15",
		ExternalVideoRef: "https://www.youtube.com/watch?v=A79Qh9wh6m8",
		LikeCount:        2120,
		SaveCount:        950,
	},
}

var Playlists = []Playlist{
	{
		Name:        "AI Fundamentals",
		Description: "Bite-sized explainers on GenAI, ML, and prompt craft.",
		ItemIDs:     []string{"r2", "r3", "r4"},
		Progress:    0.65,
		Tags:        []string{"AI", "Prompting"},
	},
	{
		Name:        "Math Refresh",
		Description: "Daily algebra and calculus boosts.",
		ItemIDs:     []string{"r1", "r4"},
		Progress:    0.32,
		Tags:        []string{"Math", "STEM"},
	},
	{
		Name:        "UX in Minutes",
		Description: "Micro-lessons on user empathy and prototyping.",
		ItemIDs:     []string{"r3"},
		Progress:    0.9,
		Tags:        []string{"Design", "Product"},
	},
}

var MicroCourses = []MicroCourse{
	{
		ID:            "c1",
		Title:         "Micro-Course: GenAI Launchpad",
		Level:         DifficultyIntermediate,
		DurationLabel: "35 min",
		Description:   "Understand prompts, evals, and responsible AI with snackable videos.",
		Modules: []CourseModule{
			{Title: "Prompt Patterns", DurationLabel: "8 min"},
			{Title: "Evaluation Basics", DurationLabel: "12 min"},
			{Title: "Responsible AI Lens", DurationLabel: "15 min"},
		},
		Completion: 0.45,
	},
	{
		ID:            "c2",
		Title:         "Creative Coding Toolkit",
		Level:         DifficultyBeginner,
		DurationLabel: "28 min",
		Description:   "Build playful games with Python in under an hour.",
		Modules: []CourseModule{
			{Title: "Why Creative Code", DurationLabel: "4 min"},
			{Title: "Mini Game Loop", DurationLabel: "9 min"},
			{Title: "Visual polish", DurationLabel: "15 min"},
		},
		Completion: 0.7,
	},
}

var Quizzes = []Quiz{
	{
		ItemID:      "r1",
		Question:    "What is the quickest way to square 35?",
		Options:     []string{"35 x 35 long form", "3 x 4 then append 25", "Add 35 twice"},
		AnswerIndex: 1,
	},
	{
		ItemID:      "r2",
		Question:    "Which base pairs with adenine in DNA?",
		Options:     []string{"Cytosine", "Guanine", "Thymine", "Uracil"},
		AnswerIndex: 2,
	},
	{
		ItemID:      "r3",
		Question:    "Which stage comes first in design thinking?",
		Options:     []string{"Prototype", "Empathize", "Test"},
		AnswerIndex: 1,
	},
	{
		ItemID:      "r4",
		Question:    "What does nums[::-1] return?",
		Options:     []string{"The list reversed", "The last element", "An empty list"},
		AnswerIndex: 0,
	},
}

var DefaultLearnerProfile = LearnerProfile{
	Name:       "Alex Rivers",
	AvatarURL:  "https://avatars.githubusercontent.com/u/9919?s=200&v=4",
	StreakDays: 12,
	BaseXP:     4820,
	Badges:     []string{"Prompt Pro", "Consistency Champ", "STEM Sprinter"},
	// Seeds every new session's saved set
	SavedItemIDs: []string{"r1", "r4"},
	LearningGoals: []string{
		"Practice Python for 15 min/day",
		"Complete GenAI micro-course",
		"Save 5 new STEM reels weekly",
	},
}

var DefaultCreatorStats = CreatorStats{
	Name:             "Dr. Lina Woods",
	AvatarURL:        "https://images.unsplash.com/photo-1544723795-3fb6469f5b39",
	Followers:        18400,
	ReelsPublished:   68,
	MicroCourses:     5,
	WatchTimeMinutes: 182000,
	RecentReels: []ReelStat{
		{Title: "Explain CRISPR", Views: 8200, Likes: 640},
		{Title: "Quantum in 90s", Views: 10200, Likes: 720},
		{Title: "Ethical AI Cheat", Views: 5600, Likes: 480},
	},
	TopicPerformance: []TopicViews{
		{Topic: "AI", Views: 12000},
		{Topic: "Biology", Views: 8200},
		{Topic: "STEM Skills", Views: 7600},
		{Topic: "Ethics", Views: 5400},
	},
}

var WeeklyActivity = []DailyActivity{
	{Day: "Mon", MinutesWatched: 12, ReelsCompleted: 2},
	{Day: "Tue", MinutesWatched: 18, ReelsCompleted: 3},
	{Day: "Wed", MinutesWatched: 25, ReelsCompleted: 4},
	{Day: "Thu", MinutesWatched: 30, ReelsCompleted: 5},
	{Day: "Fri", MinutesWatched: 22, ReelsCompleted: 4},
	{Day: "Sat", MinutesWatched: 15, ReelsCompleted: 3},
	{Day: "Sun", MinutesWatched: 10, ReelsCompleted: 1},
}

var ProgressCards = []StatCard{
	{Label: "Weekly Watch Time", Value: "2h 12m", Help: "+18% vs last week"},
	{Label: "Reels Completed", Value: "22", Help: "Streak day 12"},
	{Label: "Micro-Courses", Value: "2 active", Help: "Finish GenAI by Sunday"},
}

// UploadTopics are the topics a creator may file a new reel under
var UploadTopics = []string{"AI", "Math", "Design", "Biology", "Other"}
