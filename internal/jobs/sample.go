package jobs

// samplePostings is the listing the front end develops against.
var samplePostings = []Posting{
	{
		ID:          1,
		Title:       "Senior React Developer",
		Company:     "TechCorp",
		Location:    "Remote",
		Description: "Looking for a seasoned React developer to build modern web applications.",
	},
	{
		ID:          2,
		Title:       "Python Backend Engineer",
		Company:     "DataMinds",
		Location:    "New York, NY",
		Description: "Build and maintain our data processing pipelines using Python.",
	},
	{
		ID:          3,
		Title:       "UX/UI Designer",
		Company:     "Creative Inc.",
		Location:    "San Francisco, CA",
		Description: "Design user-friendly interfaces for our new mobile app.",
	},
}

// Default returns the registry of sample postings.
func Default() *Registry {
	reg, err := NewRegistry(samplePostings...)
	if err != nil {
		panic("jobs: invalid sample postings: " + err.Error())
	}
	return reg
}
