package models

import "time"

const (
	AudienceAll      = "all"
	AudienceTeachers = "teachers"
	AudienceParents  = "parents"
	AudienceStudents = "students"
)

const (
	CategoryGeneral     = "general"
	CategoryRegulations = "regulations"
	CategoryReports     = "reports"
	CategoryForms       = "forms"
)

var allowedAudiences = map[string]bool{
	AudienceAll:      true,
	AudienceTeachers: true,
	AudienceParents:  true,
	AudienceStudents: true,
}

var allowedCategories = map[string]bool{
	CategoryGeneral:     true,
	CategoryRegulations: true,
	CategoryReports:     true,
	CategoryForms:       true,
}

func IsValidAudience(s string) bool {
	return allowedAudiences[s]
}

func IsValidCategory(s string) bool {
	return allowedCategories[s]
}

type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Audience     string    `json:"audience"`
	Category     string    `json:"category"`
	Path         string    `json:"path"`
	OriginalName string    `json:"original_name"`
	IsPublic     bool      `json:"is_public"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type DocumentFilter struct {
	Audience string
	Category string
	Limit    int
}

func (f DocumentFilter) IsValid() bool {
	if f.Audience != "" && !allowedAudiences[f.Audience] {
		return false
	}
	if f.Category != "" && !allowedCategories[f.Category] {
		return false
	}
	return true
}
