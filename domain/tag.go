package domain

import "strings"

// Tag labels courses and questions for filtering.
type Tag struct {
	Record
	Name        string `json:"name" dynamodbav:"name"`
	Slug        string `json:"slug" dynamodbav:"slug"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
}

// Slugify derives a URL-safe slug from a tag name: lowercased, spaces and
// underscores collapsed to single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}
