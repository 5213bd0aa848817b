package genealogy

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/camden-git/familytree/models"
)

// MigrationEntry is one located birth in the timeline.
type MigrationEntry struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	WBS      string `json:"wbs"`
}

// MigrationYear groups the entries born in one year.
type MigrationYear struct {
	Year    int              `json:"year"`
	Entries []MigrationEntry `json:"entries"`
}

// MigrationTimeline is ordered by ascending year.
type MigrationTimeline []MigrationYear

// Years returns the timeline keys in order.
func (t MigrationTimeline) Years() []int {
	years := make([]int, len(t))
	for i, y := range t {
		years[i] = y.Year
	}
	return years
}

// Map returns the timeline as a year-keyed map.
func (t MigrationTimeline) Map() map[int][]MigrationEntry {
	m := make(map[int][]MigrationEntry, len(t))
	for _, y := range t {
		m[y.Year] = y.Entries
	}
	return m
}

// MarshalJSON encodes the timeline as an object whose numeric year keys stay ascending.
func (t MigrationTimeline) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, y := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(y.Year)))
		buf.WriteByte(':')
		entries, err := json.Marshal(y.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildMigrationTimeline indexes every person with both a birth year and a location
// by birth year. Entries of the same year keep the family's insertion order.
func BuildMigrationTimeline(family *models.Family) MigrationTimeline {
	byYear := make(map[int][]MigrationEntry)
	for _, p := range family.Persons() {
		if p.BirthYear == nil || p.Location == nil {
			continue
		}
		byYear[*p.BirthYear] = append(byYear[*p.BirthYear], MigrationEntry{
			Name:     p.Name,
			Location: *p.Location,
			WBS:      p.WBS,
		})
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	timeline := make(MigrationTimeline, 0, len(years))
	for _, y := range years {
		timeline = append(timeline, MigrationYear{Year: y, Entries: byYear[y]})
	}
	return timeline
}
