package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "job_details": {
    "company_logo_url": "https://assets.ccbp.in/logos/netflix.png",
    "company_website_url": "https://about.netflix.com/en",
    "employment_type": "Internship",
    "id": "bb95e51b-b1b2-4d97-bee4-1d5ec2b96751",
    "job_description": "We are looking for a DevOps Engineer",
    "life_at_company": {
      "description": "Our core philosophy is people over process.",
      "image_url": "https://assets.ccbp.in/life/netflix.png"
    },
    "location": "Delhi",
    "package_per_annum": "10 LPA",
    "rating": 4,
    "skills": [
      {"image_url": "https://assets.ccbp.in/skills/docker.png", "name": "Docker"},
      {"image_url": "https://assets.ccbp.in/skills/k8s.png", "name": "Kubernetes"}
    ],
    "title": "Devops Engineer"
  },
  "similar_jobs": [
    {
      "company_logo_url": "https://assets.ccbp.in/logos/netflix.png",
      "employment_type": "Freelance",
      "id": "2b40029d-e5a5-48cc-84a6-b6e12d25625d",
      "job_description": "The Experimentation Platform team builds internal tools.",
      "location": "Delhi",
      "rating": 4,
      "title": "Frontend Engineer"
    },
    {
      "company_logo_url": "https://assets.ccbp.in/logos/google.png",
      "employment_type": "Full Time",
      "id": "7a8b1d1f-6cb1-4b0b-9d2d-6d2c0a9c4e11",
      "job_description": "Search infrastructure.",
      "location": "Bangalore",
      "rating": 3.5,
      "title": "Backend Engineer"
    }
  ]
}`

func TestNormalize_MapsEveryField(t *testing.T) {
	details, err := Normalize([]byte(sampleBody))
	require.NoError(t, err)

	want := JobDetails{
		ID:                "bb95e51b-b1b2-4d97-bee4-1d5ec2b96751",
		Title:             "Devops Engineer",
		Rating:            4,
		Description:       "We are looking for a DevOps Engineer",
		EmploymentType:    "Internship",
		Location:          "Delhi",
		PackagePerAnnum:   "10 LPA",
		CompanyLogoURL:    "https://assets.ccbp.in/logos/netflix.png",
		CompanyWebsiteURL: "https://about.netflix.com/en",
		Skills: []Skill{
			{Name: "Docker", ImageURL: "https://assets.ccbp.in/skills/docker.png"},
			{Name: "Kubernetes", ImageURL: "https://assets.ccbp.in/skills/k8s.png"},
		},
		LifeAtCompany: LifeAtCompany{
			Description: "Our core philosophy is people over process.",
			ImageURL:    "https://assets.ccbp.in/life/netflix.png",
		},
	}
	assert.Equal(t, want, details.Job)

	require.Len(t, details.SimilarJobs, 2)
	assert.Equal(t, SimilarJob{
		ID:             "2b40029d-e5a5-48cc-84a6-b6e12d25625d",
		Title:          "Frontend Engineer",
		Rating:         4,
		Description:    "The Experimentation Platform team builds internal tools.",
		EmploymentType: "Freelance",
		Location:       "Delhi",
		CompanyLogoURL: "https://assets.ccbp.in/logos/netflix.png",
	}, details.SimilarJobs[0])
	assert.Equal(t, "Backend Engineer", details.SimilarJobs[1].Title)
	assert.InDelta(t, 3.5, details.SimilarJobs[1].Rating, 0.0001)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := Normalize([]byte(sampleBody))
	require.NoError(t, err)
	second, err := Normalize([]byte(sampleBody))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Fresh structures every time.
	assert.NotSame(t, first, second)
}

func TestNormalize_EmptyCollections(t *testing.T) {
	body := `{"job_details":{"id":"1","skills":[],"life_at_company":{}},"similar_jobs":[]}`

	details, err := Normalize([]byte(body))
	require.NoError(t, err)

	assert.NotNil(t, details.Job.Skills)
	assert.Empty(t, details.Job.Skills)
	assert.NotNil(t, details.SimilarJobs)
	assert.Empty(t, details.SimilarJobs)
	assert.Equal(t, "1", details.Job.ID)
	assert.Empty(t, details.Job.Title)
}

func TestNormalize_MissingNestedFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "no job_details",
			body:  `{"similar_jobs":[]}`,
			field: "job_details",
		},
		{
			name:  "null similar_jobs",
			body:  `{"job_details":{"skills":[],"life_at_company":{}},"similar_jobs":null}`,
			field: "similar_jobs",
		},
		{
			name:  "no skills",
			body:  `{"job_details":{"life_at_company":{}},"similar_jobs":[]}`,
			field: "job_details.skills",
		},
		{
			name:  "no life_at_company",
			body:  `{"job_details":{"skills":[]},"similar_jobs":[]}`,
			field: "job_details.life_at_company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := Normalize([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, details)
			assert.ErrorIs(t, err, ErrMalformedPayload)

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := Normalize([]byte(`<html>bad gateway</html>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrMalformedPayload)
}
