package domain

// Sentinel values substituted for missing extraction fields. Ingestion
// never fails on an absent scalar; it records one of these instead.
// Unknown doubles as the read-side fallback when a job has no POSTS or
// LOCATED_AT edge.
const (
	UntitledRole   = "Untitled Role"
	UnknownCompany = "Unknown Company"
	Unknown        = "Unknown"
	NotSpecified   = "Not specified"
)

// JobRecord is the structured output of the upstream extraction step.
// Every field is optional; ingestion applies the sentinel policy.
type JobRecord struct {
	JobID              string   `json:"job_id,omitempty"`
	JobTitle           string   `json:"job_title,omitempty"`
	Company            string   `json:"company,omitempty"`
	Location           string   `json:"location,omitempty"`
	EmploymentType     string   `json:"employment_type,omitempty"`
	ExperienceRequired string   `json:"experience_required,omitempty"`
	SalaryRange        string   `json:"salary_range,omitempty"`
	EducationRequired  []string `json:"education_required,omitempty"`
	Certifications     []string `json:"certifications_required,omitempty"`
	SkillsRequired     []string `json:"skills_required,omitempty"`
	Tools              []string `json:"tools_and_technologies,omitempty"`
	Responsibilities   []string `json:"responsibilities,omitempty"`
}

// MatchCandidate is one aggregated row of the skill-overlap query: a job
// sharing at least one skill with the resume, before scoring and ordering.
type MatchCandidate struct {
	JobID          string
	Title          string
	Company        string
	Location       string
	EmploymentType string
	MatchingSkills []string
	Overlap        int
	TotalRequired  int
}

// ScoredJob is one ranked match result. Score currently equals Overlap;
// it is kept as a separate field so the sort-key contract survives any
// future reweighting.
type ScoredJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	MatchingSkills []string `json:"matching_skills"`
	Overlap        int      `json:"matching_skill_count"`
	TotalRequired  int      `json:"total_skill_required"`
	Coverage       float64  `json:"coverage"`
	Score          int      `json:"score"`
}

// JobSummary is the list-jobs view
type JobSummary struct {
	Title          string `json:"title"`
	EmploymentType string `json:"type"`
	Location       string `json:"location"`
}

// SkillJobMatch is one search-by-skill hit
type SkillJobMatch struct {
	Title      string `json:"title"`
	Location   string `json:"location"`
	SkillMatch string `json:"skill_match"`
}

// JobDetail is the skills-and-tools view for a single job
type JobDetail struct {
	Title  string   `json:"job_title"`
	Skills []string `json:"skills"`
	Tools  []string `json:"tools"`
}

// ResumeSummary identifies a stored resume. Resume nodes are written by
// an out-of-band ingestion path and are read-only here.
type ResumeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
