package jobs

import (
	"encoding/json"
	"fmt"
)

// Payload field names reported by MissingFieldError.
const (
	fieldJobDetails    = "job_details"
	fieldSimilarJobs   = "similar_jobs"
	fieldSkills        = "job_details.skills"
	fieldLifeAtCompany = "job_details.life_at_company"
)

// Normalize decodes a job details response body and maps its snake_case
// fields onto the view models. Skill and similar job order is kept.
//
// The nested objects the detail view reads unconditionally (job_details,
// its skills and life_at_company, and similar_jobs) must be present; a
// missing one yields a *MissingFieldError. Absent scalars become zero values.
func Normalize(body []byte) (*Details, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if resp.JobDetails == nil {
		return nil, &MissingFieldError{Field: fieldJobDetails}
	}
	if resp.SimilarJobs == nil {
		return nil, &MissingFieldError{Field: fieldSimilarJobs}
	}

	job, err := normalizeJobDetails(resp.JobDetails)
	if err != nil {
		return nil, err
	}

	similar := make([]SimilarJob, 0, len(*resp.SimilarJobs))
	for _, raw := range *resp.SimilarJobs {
		similar = append(similar, normalizeSimilarJob(raw))
	}

	return &Details{Job: job, SimilarJobs: similar}, nil
}

func normalizeJobDetails(raw *apiJobDetails) (JobDetails, error) {
	if raw.Skills == nil {
		return JobDetails{}, &MissingFieldError{Field: fieldSkills}
	}
	if raw.LifeAtCompany == nil {
		return JobDetails{}, &MissingFieldError{Field: fieldLifeAtCompany}
	}

	skills := make([]Skill, 0, len(*raw.Skills))
	for _, s := range *raw.Skills {
		skills = append(skills, Skill{Name: s.Name, ImageURL: s.ImageURL})
	}

	return JobDetails{
		ID:                raw.ID,
		Title:             raw.Title,
		Rating:            raw.Rating,
		Description:       raw.JobDescription,
		EmploymentType:    raw.EmploymentType,
		Location:          raw.Location,
		PackagePerAnnum:   raw.PackagePerAnnum,
		CompanyLogoURL:    raw.CompanyLogoURL,
		CompanyWebsiteURL: raw.CompanyWebsiteURL,
		Skills:            skills,
		LifeAtCompany: LifeAtCompany{
			Description: raw.LifeAtCompany.Description,
			ImageURL:    raw.LifeAtCompany.ImageURL,
		},
	}, nil
}

func normalizeSimilarJob(raw apiSimilarJob) SimilarJob {
	return SimilarJob{
		ID:             raw.ID,
		Title:          raw.Title,
		Rating:         raw.Rating,
		Description:    raw.JobDescription,
		EmploymentType: raw.EmploymentType,
		Location:       raw.Location,
		CompanyLogoURL: raw.CompanyLogoURL,
	}
}
