// Package jobs talks to the job postings API and shapes its payloads into
// view models for the detail screen.
package jobs

// Skill is one required skill of a posting.
type Skill struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// LifeAtCompany describes the employer's culture section.
type LifeAtCompany struct {
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// JobDetails is the normalized posting shown on the detail screen.
type JobDetails struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Rating            float64       `json:"rating"`
	Description       string        `json:"jobDescription"`
	EmploymentType    string        `json:"employmentType"`
	Location          string        `json:"location"`
	PackagePerAnnum   string        `json:"packagePerAnnum"`
	CompanyLogoURL    string        `json:"companyLogoUrl"`
	CompanyWebsiteURL string        `json:"companyWebsiteUrl"`
	Skills            []Skill       `json:"skills"`
	LifeAtCompany     LifeAtCompany `json:"lifeAtCompany"`
}

// SimilarJob is the abbreviated record rendered as a "similar jobs" card.
type SimilarJob struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Rating         float64 `json:"rating"`
	Description    string  `json:"jobDescription"`
	EmploymentType string  `json:"employmentType"`
	Location       string  `json:"location"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
}

// Details bundles one posting with its similar postings, in API order.
type Details struct {
	Job         JobDetails   `json:"jobDetails"`
	SimilarJobs []SimilarJob `json:"similarJobs"`
}

// Wire types mirror the API response. Nested objects and arrays are pointers
// so that absence can be told apart from an empty value.

type apiResponse struct {
	JobDetails  *apiJobDetails   `json:"job_details"`
	SimilarJobs *[]apiSimilarJob `json:"similar_jobs"`
}

type apiJobDetails struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Rating            float64           `json:"rating"`
	JobDescription    string            `json:"job_description"`
	EmploymentType    string            `json:"employment_type"`
	Location          string            `json:"location"`
	PackagePerAnnum   string            `json:"package_per_annum"`
	CompanyLogoURL    string            `json:"company_logo_url"`
	CompanyWebsiteURL string            `json:"company_website_url"`
	Skills            *[]apiSkill       `json:"skills"`
	LifeAtCompany     *apiLifeAtCompany `json:"life_at_company"`
}

type apiSkill struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type apiLifeAtCompany struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type apiSimilarJob struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Rating         float64 `json:"rating"`
	JobDescription string  `json:"job_description"`
	EmploymentType string  `json:"employment_type"`
	Location       string  `json:"location"`
	CompanyLogoURL string  `json:"company_logo_url"`
}
