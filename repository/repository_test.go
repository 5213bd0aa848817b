package repository_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/familytree/database"
	"github.com/camden-git/familytree/database/testutil"
	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/models"
	"github.com/camden-git/familytree/repository"
)

const familyCSV = `id,wbs,name,gender,birth_year,death_year,generation,clan_name,location,note
10,1,A,M,1800,1870,1,Zhang,Beijing,
3,1.1,B,F,1825,,2,Zhang,Shanghai,second wife
7,1.2,C,M,1828,1890,2,,,
1,1.1.1,D,,1850,,3,,Hangzhou,
`

func parsedFamily(t *testing.T) *models.Family {
	t.Helper()
	family, err := genealogy.ParseCSV(strings.NewReader(familyCSV))
	require.NoError(t, err)
	require.NoError(t, genealogy.Validate(family))
	return family
}

func TestCSVFamilyRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	require.NoError(t, os.WriteFile(path, []byte(familyCSV), 0o644))

	family, err := repository.NewCSVFamilyRepository(path).LoadFamily()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 3, 7, 1}, family.IDs())
}

func TestCSVFamilyRepository_PropagatesCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,wbs,name,extra\n"), 0o644))

	_, err := repository.NewCSVFamilyRepository(path).LoadFamily()
	require.Error(t, err)
	assert.True(t, errors.Is(err, genealogy.ErrSchema))
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	original := parsedFamily(t)

	gdb, err := database.InitGormDB(path)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(gdb))

	snap := repository.NewGormSnapshotRepository(gdb)
	require.NoError(t, snap.SaveFamily(original))
	// saving again replaces rather than duplicates
	require.NoError(t, snap.SaveFamily(original))
	n, err := snap.CountRecords()
	require.NoError(t, err)
	assert.EqualValues(t, original.Len(), n)
	require.NoError(t, database.CloseGormDB(gdb))

	db, err := database.OpenSourceDB(path)
	require.NoError(t, err)
	defer db.Close()

	loaded, err := repository.NewSQLFamilyRepository(db).LoadFamily()
	require.NoError(t, err)
	assert.Equal(t, original.IDs(), loaded.IDs(), "source order survives the snapshot")
	require.NoError(t, genealogy.Validate(loaded))

	for _, want := range original.Persons() {
		got, ok := loaded.Get(want.ID)
		require.True(t, ok)
		assert.Equal(t, want.WBS, got.WBS)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.ParentID, got.ParentID)
		assert.Equal(t, want.Generation, got.Generation)
		assert.Equal(t, want.BirthYear, got.BirthYear)
		assert.Equal(t, want.DeathYear, got.DeathYear)
		assert.Equal(t, want.Location, got.Location)
		assert.Equal(t, want.Note, got.Note)
	}
}

func TestSQLFamilyRepository_StoredParentIsNotRederived(t *testing.T) {
	db := testutil.SetupPeopleDB(t, filepath.Join(t.TempDir(), "family.db"))

	wrongParent := 2
	testutil.InsertPeople(t, db,
		&models.Person{ID: 1, WBS: "1", Name: "A"},
		&models.Person{ID: 2, WBS: "2", Name: "B"},
		&models.Person{ID: 3, WBS: "1.1", Name: "C", ParentID: &wrongParent},
	)

	count, err := database.CountPersons(db)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	family, err := repository.NewSQLFamilyRepository(db).LoadFamily()
	require.NoError(t, err)

	err = genealogy.Validate(family)
	require.Error(t, err)
	assert.True(t, errors.Is(err, genealogy.ErrParentMismatch))
}

func TestSQLFamilyRepository_Empty(t *testing.T) {
	db := testutil.SetupPeopleDB(t, filepath.Join(t.TempDir(), "empty.db"))

	family, err := repository.NewSQLFamilyRepository(db).LoadFamily()
	require.NoError(t, err)
	assert.Equal(t, 0, family.Len())
}

func TestSQLFamilyRepository_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.db")
	fixture := testutil.SetupPeopleDB(t, path)
	_, err := fixture.Exec("DROP TABLE people")
	require.NoError(t, err)

	db, err := database.OpenSourceDB(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = repository.NewSQLFamilyRepository(db).LoadFamily()
	assert.Error(t, err)
}
