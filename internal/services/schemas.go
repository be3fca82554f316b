package services

// Filter configuration per content type. The search parameter always
// spans SearchColumns; everything listed in Filters is ANDed on top.
var (
	JobSchema = Schema{
		Name:          "job",
		SearchColumns: []string{"title", "company", "description"},
		Filters: []FilterField{
			{Param: "location", Column: "location", Kind: FilterSubstring},
			{Param: "experience_level", Column: "experience_level", Kind: FilterExact},
			{Param: "job_type", Column: "job_type", Kind: FilterExact},
		},
	}

	InternshipSchema = Schema{
		Name:          "internship",
		SearchColumns: []string{"title", "company", "description"},
		Filters: []FilterField{
			{Param: "location", Column: "location", Kind: FilterSubstring},
			{Param: "duration", Column: "duration_months", Kind: FilterExactInt},
		},
	}

	ArticleSchema = Schema{
		Name:          "article",
		HasSlug:       true,
		SearchColumns: []string{"title", "summary", "content"},
		Filters: []FilterField{
			{Param: "category", Column: "category", Kind: FilterExact},
		},
	}

	RoadmapSchema = Schema{
		Name:          "roadmap",
		HasSlug:       true,
		SearchColumns: []string{"title", "description"},
		Filters: []FilterField{
			{Param: "difficulty", Column: "difficulty", Kind: FilterExact},
		},
	}

	DSAProblemSchema = Schema{
		Name:          "dsa-problem",
		SearchColumns: []string{"title", "description"},
		Filters: []FilterField{
			{Param: "difficulty", Column: "difficulty", Kind: FilterExact},
			{Param: "topic", Column: "topic", Kind: FilterExact},
		},
	}

	PageSchema = Schema{
		Name:          "page",
		HasSlug:       true,
		SearchColumns: []string{"title", "content"},
		Filters: []FilterField{
			{Param: "section", Column: "section", Kind: FilterExact},
		},
	}
)
