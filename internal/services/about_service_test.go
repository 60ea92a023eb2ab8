package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devport/portfolio-api/internal/models"
)

func TestSanitizeStrings(t *testing.T) {
	in := []string{"  Go ", "", "   ", "MongoDB", "Docker  "}
	assert.Equal(t, []string{"Go", "MongoDB", "Docker"}, SanitizeStrings(in))
	assert.Empty(t, SanitizeStrings(nil))
}

func TestSanitizeExperience(t *testing.T) {
	in := []models.ExperienceEntry{
		{Company: "Acme", Position: "Engineer"},
		{Company: "  ", Position: "Engineer"},
		{Company: "Globex", Position: ""},
		{Company: "Initech", Position: "Lead", Description: "shipped things"},
	}
	out := SanitizeExperience(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0].Company)
	assert.Equal(t, "Initech", out[1].Company)
}

func TestSanitizeEducation(t *testing.T) {
	in := []models.EducationEntry{
		{Institution: "MIT", Degree: "BSc"},
		{Institution: "", Degree: "MSc"},
		{Institution: "ETH", Degree: "   "},
	}
	out := SanitizeEducation(in)
	assert.Len(t, out, 1)
	assert.Equal(t, "MIT", out[0].Institution)
}
