package genealogy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// buildFamily adds persons in the given order without going through the parser.
func buildFamily(t *testing.T, persons ...*models.Person) *models.Family {
	t.Helper()
	family := models.NewFamily(len(persons))
	for _, p := range persons {
		require.NoError(t, family.Add(p))
	}
	return family
}

func TestValidate_ParsedFamilyPasses(t *testing.T) {
	family, err := genealogy.ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.NoError(t, genealogy.Validate(family))
}

func TestValidate_DoesNotMutate(t *testing.T) {
	family, err := genealogy.ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, genealogy.Validate(family))
	for _, p := range family.Persons() {
		assert.Nil(t, p.Children, "validation must not build adjacency")
	}
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name    string
		persons []*models.Person
		kind    error
	}{
		{
			name: "duplicate wbs",
			persons: []*models.Person{
				{ID: 1, WBS: "1", Name: "A"},
				{ID: 2, WBS: "1", Name: "B"},
			},
			kind: genealogy.ErrDuplicateWBS,
		},
		{
			name: "generation mismatch",
			persons: []*models.Person{
				{ID: 1, WBS: "1", Name: "A", Generation: intPtr(1)},
				{ID: 2, WBS: "1.1", Name: "B", ParentID: intPtr(1), Generation: intPtr(3)},
			},
			kind: genealogy.ErrGenerationMismatch,
		},
		{
			name: "dangling parent",
			persons: []*models.Person{
				{ID: 2, WBS: "1.1", Name: "B", ParentID: intPtr(99)},
			},
			kind: genealogy.ErrDanglingParent,
		},
		{
			name: "wbs not under parent",
			persons: []*models.Person{
				{ID: 1, WBS: "1", Name: "A"},
				{ID: 2, WBS: "2", Name: "B"},
				{ID: 3, WBS: "2.1", Name: "C", ParentID: intPtr(1)},
			},
			kind: genealogy.ErrParentMismatch,
		},
		{
			name: "grandchild linked to grandparent",
			persons: []*models.Person{
				{ID: 1, WBS: "1", Name: "A"},
				{ID: 2, WBS: "1.1", Name: "B", ParentID: intPtr(1)},
				{ID: 3, WBS: "1.1.1", Name: "C", ParentID: intPtr(1)},
			},
			kind: genealogy.ErrParentMismatch,
		},
		{
			name: "missing parent link",
			persons: []*models.Person{
				{ID: 1, WBS: "1", Name: "A"},
				{ID: 2, WBS: "1.1", Name: "B"},
			},
			kind: genealogy.ErrUnresolvedParent,
		},
		{
			name: "malformed wbs",
			persons: []*models.Person{
				{ID: 1, WBS: "01", Name: "A"},
			},
			kind: genealogy.ErrMalformedWBS,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := genealogy.Validate(buildFamily(t, tc.persons...))
			require.Error(t, err)
			assertIs(t, err, tc.kind)
		})
	}
}

func TestValidate_GenerationEqualsDepth(t *testing.T) {
	family := buildFamily(t,
		&models.Person{ID: 1, WBS: "1", Name: "A", Generation: intPtr(1)},
		&models.Person{ID: 2, WBS: "1.1", Name: "B", ParentID: intPtr(1), Generation: intPtr(2)},
		&models.Person{ID: 3, WBS: "1.1.4", Name: "C", ParentID: intPtr(2), Generation: intPtr(3)},
	)
	require.NoError(t, genealogy.Validate(family))
	for _, p := range family.Persons() {
		assert.Equal(t, *p.Generation, len(strings.Split(p.WBS, ".")))
	}
}
