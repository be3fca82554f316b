package services

// Extraction prompts per content type. Each takes the admin's free-text
// prompt via %s and instructs the model to answer with one bare JSON
// object whose keys line up with the matching create request.

const jobGenerationPrompt = `
You are a content assistant for a job board aimed at early-career tech talent.
Write one realistic job posting based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Job title",
    "company": "Company name",
    "location": "City, Country or 'Remote'",
    "description": "2-3 paragraph description of the role",
    "requirements": ["list", "of", "requirements"],
    "skills": ["list", "of", "skills"],
    "salary_range": "e.g. '$70k - $90k' or null",
    "experience_level": "entry | junior | mid",
    "job_type": "full-time | part-time | contract",
    "tags": ["short", "topic", "tags"]
}
3. If a field does not apply, use null. Do not invent a real company's openings.

### REQUEST:
%s
`

const internshipGenerationPrompt = `
You are a content assistant for a job board aimed at early-career tech talent.
Write one realistic internship posting based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Internship title",
    "company": "Company name",
    "location": "City, Country or 'Remote'",
    "description": "2-3 paragraph description",
    "duration_months": 3,
    "stipend": "e.g. '$2000/month' or null",
    "requirements": ["list", "of", "requirements"],
    "responsibilities": ["list", "of", "responsibilities"],
    "tags": ["short", "topic", "tags"]
}
3. If a field does not apply, use null.

### REQUEST:
%s
`

const articleGenerationPrompt = `
You are a content assistant for a career platform for early-career tech talent.
Write one article based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Article title",
    "author": "Plausible author name",
    "summary": "1-2 sentence summary",
    "content": "The full article body, 4-6 paragraphs, markdown allowed inside the string",
    "category": "careers | interviews | learning | industry",
    "read_time_minutes": 5,
    "tags": ["short", "topic", "tags"]
}

### REQUEST:
%s
`

const roadmapGenerationPrompt = `
You are a content assistant for a career platform for early-career tech talent.
Design one learning roadmap based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Roadmap title",
    "description": "What the learner will achieve",
    "difficulty": "beginner | intermediate | advanced",
    "estimated_weeks": 8,
    "steps": ["ordered", "list", "of", "steps"],
    "prerequisites": ["list", "of", "prerequisites"],
    "tags": ["short", "topic", "tags"]
}

### REQUEST:
%s
`

const dsaProblemGenerationPrompt = `
You are a content assistant for a career platform for early-career tech talent.
Write one data-structures-and-algorithms practice problem based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Problem title",
    "difficulty": "easy | medium | hard",
    "topic": "e.g. arrays, graphs, dynamic-programming",
    "description": "Full problem statement with constraints and one example",
    "hints": ["ordered", "list", "of", "hints"],
    "company_tags": ["companies", "known", "to", "ask", "this"],
    "tags": ["short", "topic", "tags"]
}

### REQUEST:
%s
`

const pageGenerationPrompt = `
You are a content assistant for a career platform for early-career tech talent.
Write one static site page based on the request below.

### INSTRUCTIONS:
1. Output a single valid JSON object. No markdown code fences, no commentary.
2. Use exactly these keys:
{
    "title": "Page title",
    "content": "The page body, markdown allowed inside the string",
    "section": "e.g. about, help, legal",
    "tags": ["short", "topic", "tags"]
}

### REQUEST:
%s
`

var generationPrompts = map[string]string{
	"job":         jobGenerationPrompt,
	"internship":  internshipGenerationPrompt,
	"article":     articleGenerationPrompt,
	"roadmap":     roadmapGenerationPrompt,
	"dsa-problem": dsaProblemGenerationPrompt,
	"page":        pageGenerationPrompt,
}
