package genealogy

import (
	"github.com/camden-git/familytree/models"
)

// Option configures FilterSubtree.
type Option func(*FilterOptions)

// FilterOptions selects the subtree root and bounds the traversal.
type FilterOptions struct {
	// RootID and RootWBS select the root; exactly one must be set.
	RootID  *int
	RootWBS *string

	// MaxDepth, if set, excludes nodes deeper than it (root = 0) and does not
	// descend below them.
	MaxDepth *int

	// GenMin and GenMax bound the effective generation of returned nodes. A node
	// outside the band is left out of the result but its children are still visited.
	GenMin *int
	GenMax *int
}

// WithRootID selects the root by person id.
func WithRootID(id int) Option {
	return func(o *FilterOptions) {
		o.RootID = &id
	}
}

// WithRootWBS selects the root by wbs.
func WithRootWBS(wbs string) Option {
	return func(o *FilterOptions) {
		o.RootWBS = &wbs
	}
}

// WithMaxDepth prunes the traversal below limit. A limit of 0 returns only the root.
func WithMaxDepth(limit int) Option {
	return func(o *FilterOptions) {
		o.MaxDepth = &limit
	}
}

// WithGenMin sets the lower generation bound (inclusive).
func WithGenMin(gen int) Option {
	return func(o *FilterOptions) {
		o.GenMin = &gen
	}
}

// WithGenMax sets the upper generation bound (inclusive).
func WithGenMax(gen int) Option {
	return func(o *FilterOptions) {
		o.GenMax = &gen
	}
}

// WithGenerationRange sets both generation bounds.
func WithGenerationRange(lo, hi int) Option {
	return func(o *FilterOptions) {
		o.GenMin = &lo
		o.GenMax = &hi
	}
}

func (o FilterOptions) inBand(gen int) bool {
	if o.GenMin != nil && gen < *o.GenMin {
		return false
	}
	if o.GenMax != nil && gen > *o.GenMax {
		return false
	}
	return true
}

// FindByWBS returns the person whose wbs equals wbs.
func FindByWBS(family *models.Family, wbs string) (*models.Person, error) {
	for _, p := range family.Persons() {
		if p.WBS == wbs {
			return p, nil
		}
	}
	return nil, queryErrorf(ErrRootNotFound, "WBS not found: %s", wbs)
}

// ResolveRoot applies the root selector of opts.
func ResolveRoot(family *models.Family, opts FilterOptions) (*models.Person, error) {
	switch {
	case opts.RootID != nil && opts.RootWBS != nil:
		return nil, queryErrorf(ErrRootSelector, "root_id and root_wbs are mutually exclusive")
	case opts.RootWBS != nil:
		return FindByWBS(family, *opts.RootWBS)
	case opts.RootID != nil:
		root, ok := family.Get(*opts.RootID)
		if !ok {
			return nil, queryErrorf(ErrRootNotFound, "root_id not found: %d", *opts.RootID)
		}
		return root, nil
	default:
		return nil, queryErrorf(ErrRootSelector, "either root_id or root_wbs must be provided")
	}
}

// FilterSubtree walks the built tree depth-first in pre-order from the selected
// root and returns the persons that pass the depth and generation bounds.
// Depth pruning stops descent; the generation band only filters the output.
func FilterSubtree(family *models.Family, opts ...Option) ([]*models.Person, error) {
	var o FilterOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxDepth != nil && *o.MaxDepth < 0 {
		return nil, queryErrorf(ErrInvalidDepth, "max_depth must be >= 0, got %d", *o.MaxDepth)
	}

	root, err := ResolveRoot(family, o)
	if err != nil {
		return nil, err
	}

	type frame struct {
		person *models.Person
		depth  int
	}

	result := make([]*models.Person, 0)
	visited := make(map[int]bool)
	stack := []frame{{person: root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if o.MaxDepth != nil && top.depth > *o.MaxDepth {
			continue
		}
		if visited[top.person.ID] {
			continue
		}
		visited[top.person.ID] = true

		if o.inBand(top.person.EffectiveGeneration()) {
			result = append(result, top.person)
		}

		children := family.ChildrenOf(top.person)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{person: children[i], depth: top.depth + 1})
		}
	}
	return result, nil
}
