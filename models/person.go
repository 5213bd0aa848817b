package models

import "strings"

// Person is a single member of the family record set.
// ParentID is authoritative; Children is a derived index filled by the tree builder.
type Person struct {
	ID         int     `json:"id"`
	ParentID   *int    `json:"parent_id"`
	WBS        string  `json:"wbs"`
	Name       string  `json:"name"`
	Gender     *string `json:"gender,omitempty"`
	BirthYear  *int    `json:"birth_year,omitempty"`
	DeathYear  *int    `json:"death_year,omitempty"`
	Generation *int    `json:"generation,omitempty"`
	ClanName   *string `json:"clan_name,omitempty"`
	Location   *string `json:"location,omitempty"`
	Note       *string `json:"note,omitempty"`

	Children []int `json:"children"`
}

// Depth is the number of dot-separated segments in the WBS.
func (p *Person) Depth() int {
	return strings.Count(p.WBS, ".") + 1
}

// EffectiveGeneration returns the explicit generation when present, else the WBS depth.
func (p *Person) EffectiveGeneration() int {
	if p.Generation != nil {
		return *p.Generation
	}
	return p.Depth()
}

// IsRoot reports whether the person has no parent.
func (p *Person) IsRoot() bool {
	return p.ParentID == nil
}

func (p *Person) String() string {
	return "<Person " + p.WBS + " " + p.Name + ">"
}
