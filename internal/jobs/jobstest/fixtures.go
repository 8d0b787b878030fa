package jobstest

import (
	"encoding/json"
	"fmt"
)

// Payload builds a well-formed job details response for id with the given
// number of skills and similar jobs. Values are derived from id and index so
// tests can assert on order.
func Payload(id string, skills, similar int) map[string]any {
	skillList := make([]map[string]any, 0, skills)
	for i := range skills {
		skillList = append(skillList, map[string]any{
			"name":      fmt.Sprintf("Skill %d", i+1),
			"image_url": fmt.Sprintf("https://assets.example.com/skills/%d.png", i+1),
		})
	}

	similarList := make([]map[string]any, 0, similar)
	for i := range similar {
		similarList = append(similarList, map[string]any{
			"id":               fmt.Sprintf("%s-similar-%d", id, i+1),
			"title":            fmt.Sprintf("Similar Role %d", i+1),
			"rating":           3 + i%3,
			"job_description":  fmt.Sprintf("Similar role %d description", i+1),
			"employment_type":  "Full Time",
			"location":         "Hyderabad",
			"company_logo_url": fmt.Sprintf("https://assets.example.com/logos/similar-%d.png", i+1),
		})
	}

	return map[string]any{
		"job_details": map[string]any{
			"id":                  id,
			"title":               "Backend Engineer " + id,
			"rating":              4.5,
			"job_description":     "Build and operate services for job " + id,
			"employment_type":     "Internship",
			"location":            "Bangalore",
			"package_per_annum":   "21 LPA",
			"company_logo_url":    "https://assets.example.com/logos/" + id + ".png",
			"company_website_url": "https://company.example.com/" + id,
			"skills":              skillList,
			"life_at_company": map[string]any{
				"description": "Life at company " + id,
				"image_url":   "https://assets.example.com/life/" + id + ".png",
			},
		},
		"similar_jobs": similarList,
	}
}

// PayloadJSON is Payload encoded as JSON.
func PayloadJSON(id string, skills, similar int) []byte {
	body, err := json.Marshal(Payload(id, skills, similar))
	if err != nil {
		panic(fmt.Sprintf("jobstest: encoding payload: %v", err))
	}
	return body
}
