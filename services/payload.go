package services

import (
	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/models"
)

// PayloadNode is one person in the graph projection of a subtree.
type PayloadNode struct {
	ID         int     `json:"id"`
	ParentID   *int    `json:"parent_id"`
	WBS        string  `json:"wbs"`
	Name       string  `json:"name"`
	Generation int     `json:"generation"`
	BirthYear  *int    `json:"birth_year"`
	DeathYear  *int    `json:"death_year"`
	Location   *string `json:"location"`
	Note       *string `json:"note"`
}

// PayloadEdge links a parent to a child, both inside the projected node set.
type PayloadEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SubtreePayload is the node/edge projection handed to graph-drawing consumers.
type SubtreePayload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
}

// Projection turns a filtered subtree into nodes and edges. An edge is kept only
// when its parent is also in persons; it is never rewired to another node.
func Projection(persons []*models.Person) SubtreePayload {
	inSet := make(map[int]bool, len(persons))
	for _, p := range persons {
		inSet[p.ID] = true
	}

	payload := SubtreePayload{
		Nodes: make([]PayloadNode, 0, len(persons)),
		Edges: make([]PayloadEdge, 0, len(persons)),
	}
	for _, p := range persons {
		payload.Nodes = append(payload.Nodes, PayloadNode{
			ID:         p.ID,
			ParentID:   p.ParentID,
			WBS:        p.WBS,
			Name:       p.Name,
			Generation: p.EffectiveGeneration(),
			BirthYear:  p.BirthYear,
			DeathYear:  p.DeathYear,
			Location:   p.Location,
			Note:       p.Note,
		})
		if p.ParentID != nil && inSet[*p.ParentID] {
			payload.Edges = append(payload.Edges, PayloadEdge{From: *p.ParentID, To: p.ID})
		}
	}
	return payload
}

// SubtreePayload filters the subtree and projects it.
func (s *FamilyService) SubtreePayload(opts ...genealogy.Option) (SubtreePayload, error) {
	persons, err := s.Subtree(opts...)
	if err != nil {
		return SubtreePayload{}, err
	}
	return Projection(persons), nil
}
