package genealogy

import (
	"strings"

	"github.com/camden-git/familytree/models"
)

// Validate re-checks the global invariants of a parsed family in one pass over
// the persons: unique wbs, generation equal to wbs depth when given, and every
// parent present with the child's wbs exactly one segment below the parent's.
// It never mutates the family, so mappings built outside ParseCSV can be checked too.
func Validate(family *models.Family) error {
	seenWBS := make(map[string]int, family.Len())
	return family.Each(func(p *models.Person) error {
		if err := CheckWBS(p.WBS); err != nil {
			return err
		}

		if other, dup := seenWBS[p.WBS]; dup {
			return integrityErrorf(ErrDuplicateWBS, "Duplicated WBS: %s (ids %d and %d)", p.WBS, other, p.ID)
		}
		seenWBS[p.WBS] = p.ID

		if p.Generation != nil && *p.Generation != p.Depth() {
			return integrityErrorf(ErrGenerationMismatch, "Generation mismatch for %s: generation=%d, wbs=%s", p.Name, *p.Generation, p.WBS)
		}

		if p.ParentID == nil {
			if parentWBS, ok := ParentWBS(p.WBS); ok {
				return integrityErrorf(ErrUnresolvedParent, "%s (wbs=%s): no parent set for parent wbs %s", p.Name, p.WBS, parentWBS)
			}
			return nil
		}

		parent, ok := family.Get(*p.ParentID)
		if !ok {
			return integrityErrorf(ErrDanglingParent, "%s: parent_id %d not found", p.Name, *p.ParentID)
		}
		if !strings.HasPrefix(p.WBS, parent.WBS+".") || p.Depth() != parent.Depth()+1 {
			return integrityErrorf(ErrParentMismatch, "WBS-parent mismatch: %s not under %s", p.WBS, parent.WBS)
		}
		return nil
	})
}
