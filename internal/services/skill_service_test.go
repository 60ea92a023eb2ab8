package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devport/portfolio-api/internal/models"
)

func TestGroupByCategory(t *testing.T) {
	skills := []models.Skill{
		{Name: "React", Category: "Frontend", Order: 1},
		{Name: "Go", Category: "Backend", Order: 1},
		{Name: "Fiber", Category: "Backend", Order: 2},
		{Name: "MongoDB", Category: "Database", Order: 1},
	}

	grouped := GroupByCategory(skills)
	assert.Len(t, grouped, 3)
	assert.Len(t, grouped["Backend"], 2)

	// Input order is preserved within each category.
	assert.Equal(t, "Go", grouped["Backend"][0].Name)
	assert.Equal(t, "Fiber", grouped["Backend"][1].Name)

	assert.Empty(t, GroupByCategory(nil))
}
