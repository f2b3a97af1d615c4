package directory

import (
	"fmt"
	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/utils"
	"sort"
	"strings"
)

// Scope selects which fields feed the free-text search index. The admin
// table also matches on contact data and slug; the public listing matches on
// treatments instead.
type Scope int

const (
	ScopeAdmin Scope = iota
	ScopePublic
)

// Params is everything a view can constrain the collection by. Zero values
// mean "no constraint"; matching is the AND of whatever is supplied.
type Params struct {
	Query     string
	Specialty string
	Branch    string
	Status    string
	Scope     Scope
}

// ApplyBaseOrder returns a new slice sorted by descending priority, ties
// broken by case- and accent-insensitive comparison of the full name under
// Spanish collation. This is the base order every filter operates over;
// filtering never re-sorts.
func ApplyBaseOrder(doctors []*models.Doctor) []*models.Doctor {
	ordered := make([]*models.Doctor, len(doctors))
	copy(ordered, doctors)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return utils.CompareCollated(ordered[i].FullName, ordered[j].FullName) < 0
	})
	return ordered
}

// Apply filters the collection without mutating or re-ordering it.
func Apply(doctors []*models.Doctor, params Params) []*models.Doctor {
	query := strings.TrimSpace(utils.NormalizeForSearch(params.Query))

	filtered := []*models.Doctor{}
	for _, doctor := range doctors {
		if !matchesStatus(doctor, params.Status) {
			continue
		}
		if params.Specialty != "" && !containsExact(doctor.Specialties, params.Specialty) {
			continue
		}
		if params.Branch != "" && utils.NormalizeForSearch(doctor.Branch) != utils.NormalizeForSearch(params.Branch) {
			continue
		}
		if query != "" && !strings.Contains(searchIndex(doctor, params.Scope), query) {
			continue
		}
		filtered = append(filtered, doctor)
	}
	return filtered
}

// Summarize renders the status line both views show under the list.
func Summarize(filtered, total int, queryText string) string {
	if total == 0 {
		return constvars.DirectoryStatusEmpty
	}

	plural := "es"
	if total == 1 {
		plural = ""
	}

	queryText = strings.TrimSpace(queryText)
	if filtered == total && queryText == "" {
		return fmt.Sprintf(constvars.DirectoryStatusAllFormat, total, plural)
	}

	querySuffix := ""
	if queryText != "" {
		querySuffix = fmt.Sprintf(constvars.DirectoryStatusQueryFormat, queryText)
	}
	return fmt.Sprintf(constvars.DirectoryStatusFilteredFormat, filtered, total, plural, querySuffix)
}

// DistinctSpecialties flattens every specialty across the collection,
// falling back to the legacy singular field when a record carries no list.
func DistinctSpecialties(doctors []*models.Doctor) []string {
	values := []string{}
	for _, doctor := range doctors {
		if len(doctor.Specialties) > 0 {
			values = append(values, doctor.Specialties...)
			continue
		}
		if doctor.Specialty != "" {
			values = append(values, doctor.Specialty)
		}
	}
	return utils.UniqueSorted(values)
}

func DistinctBranches(doctors []*models.Doctor) []string {
	values := []string{}
	for _, doctor := range doctors {
		if doctor.Branch != "" {
			values = append(values, doctor.Branch)
		}
	}
	return utils.UniqueSorted(values)
}

func matchesStatus(doctor *models.Doctor, status string) bool {
	switch status {
	case constvars.DoctorStatusActive:
		return doctor.Active
	case constvars.DoctorStatusInactive:
		return !doctor.Active
	default:
		return true
	}
}

func containsExact(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

func searchIndex(doctor *models.Doctor, scope Scope) string {
	parts := []string{
		doctor.FullName,
		doctor.Profession,
		doctor.Branch,
		doctor.Address,
	}
	switch scope {
	case ScopeAdmin:
		parts = append(parts, doctor.Email, doctor.Phone, doctor.Slug)
		parts = append(parts, doctor.Specialties...)
	default:
		parts = append(parts, doctor.Specialties...)
		parts = append(parts, doctor.Treatments...)
	}

	nonEmpty := parts[:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return utils.NormalizeForSearch(strings.Join(nonEmpty, " "))
}
