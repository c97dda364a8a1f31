// Package filter implements the text search over the task list.
package filter

import (
	"strings"

	"github.com/benvon/smart-calendar/internal/models"
)

// Tasks returns the tasks whose text contains query, ignoring case. An empty
// query returns tasks unchanged. The input slice is never modified.
func Tasks(tasks []models.Task, query string) []models.Task {
	if query == "" {
		return tasks
	}

	needle := strings.ToLower(query)
	result := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Text), needle) {
			result = append(result, task)
		}
	}
	return result
}
