package database

import (
	"sort"
	"strings"

	"github.com/facette/natsort"

	"github.com/camden-git/familytree/models"
)

const (
	SortIDAsc   = "id_asc"
	SortWBSNat  = "wbs_nat"
	SortNameAsc = "name_asc"
)

const DefaultSortOrder = SortIDAsc

// IsValidSortOrder checks if a string is a valid sort order constant
func IsValidSortOrder(order string) bool {
	switch order {
	case SortIDAsc, SortWBSNat, SortNameAsc:
		return true
	default:
		return false
	}
}

// SortPersons returns a sorted copy of persons; the input slice is left untouched.
// wbs_nat orders "1.2" before "1.10".
func SortPersons(persons []*models.Person, order string) []*models.Person {
	sorted := make([]*models.Person, len(persons))
	copy(sorted, persons)

	switch order {
	case SortWBSNat:
		sort.SliceStable(sorted, func(i, j int) bool {
			return natsort.Compare(sorted[i].WBS, sorted[j].WBS)
		})
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID < sorted[j].ID
		})
	}
	return sorted
}
