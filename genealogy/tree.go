package genealogy

import (
	"github.com/camden-git/familytree/models"
)

// BuildTree fills every person's Children from the ParentID links and returns the
// roots. Children are reset first, so calling it again on the same family gives the
// same adjacency. Sibling order follows the family's insertion order.
func BuildTree(family *models.Family) ([]*models.Person, error) {
	persons := family.Persons()
	for _, p := range persons {
		p.Children = []int{}
	}

	roots := make([]*models.Person, 0)
	for _, p := range persons {
		if p.ParentID == nil {
			roots = append(roots, p)
			continue
		}
		parent, ok := family.Get(*p.ParentID)
		if !ok {
			return nil, integrityErrorf(ErrDanglingParent, "%s: parent_id %d not found", p.Name, *p.ParentID)
		}
		parent.Children = append(parent.Children, p.ID)
	}
	return roots, nil
}

// EdgeCount returns the number of parent -> child links currently recorded.
func EdgeCount(family *models.Family) int {
	n := 0
	for _, p := range family.Persons() {
		n += len(p.Children)
	}
	return n
}
