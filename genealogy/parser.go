package genealogy

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/camden-git/familytree/models"
)

// Column names of the family table.
const (
	ColID         = "id"
	ColWBS        = "wbs"
	ColName       = "name"
	ColGender     = "gender"
	ColBirthYear  = "birth_year"
	ColDeathYear  = "death_year"
	ColGeneration = "generation"
	ColClanName   = "clan_name"
	ColLocation   = "location"
	ColNote       = "note"
)

// RequiredColumns must be present in the header and non-empty in every row.
var RequiredColumns = []string{ColID, ColWBS, ColName}

// OptionalColumns may be present; any column outside both lists is rejected.
var OptionalColumns = []string{
	ColGender, ColBirthYear, ColDeathYear, ColGeneration, ColClanName, ColLocation, ColNote,
}

// Columns is the canonical header order.
var Columns = append(append([]string{}, RequiredColumns...), OptionalColumns...)

var nullSentinels = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"None": true,
	"null": true,
	"NULL": true,
}

const utf8BOM = "\ufeff"

func isAllowedColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// clean trims v and maps the null sentinels to absent.
func clean(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if nullSentinels[v] {
		return "", false
	}
	return v, true
}

// row is one cleaned record keyed by column name; absent values are not in the map.
type row map[string]string

func (r row) optionalString(col string) *string {
	v, ok := r[col]
	if !ok {
		return nil
	}
	return &v
}

func (r row) optionalInt(lineno int, col string) (*int, error) {
	v, ok := r[col]
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fieldErrorf(ErrNotInteger, "Line %d: %s must be integer, got %q", lineno, col, v)
	}
	return &n, nil
}

// ReadFamilyCSV opens path and parses it with ParseCSV.
func ReadFamilyCSV(path string) (*models.Family, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open family csv %s", path)
	}
	defer f.Close()

	family, err := ParseCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return family, nil
}

// ParseCSV reads a header row and data rows from r and returns the family with
// ParentID derived from each wbs. The header is line 1, the first data row line 2.
// Any bad record fails the whole parse.
func ParseCSV(r io.Reader) (*models.Family, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, schemaErrorf(ErrMissingColumn, "empty input: missing required columns %s", strings.Join(RequiredColumns, ", "))
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "Line 1: unreadable header"), ErrSchema)
	}
	columns, err := checkHeader(header)
	if err != nil {
		return nil, err
	}

	family := models.NewFamily(0)
	wbsToID := make(map[string]int)

	for lineno := 2; ; lineno++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Mark(errors.Mark(errors.Wrapf(err, "Line %d: unreadable row", lineno), ErrMalformedRow), ErrField)
		}
		if len(record) > len(columns) {
			return nil, schemaErrorf(ErrUnknownColumn, "Line %d: %d values for %d columns", lineno, len(record), len(columns))
		}

		values := make(row, len(columns))
		for i, raw := range record {
			if v, ok := clean(raw); ok {
				values[columns[i]] = v
			}
		}

		p, err := personFromRow(lineno, values)
		if err != nil {
			return nil, err
		}
		if _, dup := family.Get(p.ID); dup {
			return nil, integrityErrorf(ErrDuplicateID, "Line %d: duplicated id %d", lineno, p.ID)
		}
		if _, dup := wbsToID[p.WBS]; dup {
			return nil, integrityErrorf(ErrDuplicateWBS, "Line %d: duplicated wbs %s", lineno, p.WBS)
		}
		wbsToID[p.WBS] = p.ID
		if err := family.Add(p); err != nil {
			return nil, err
		}
	}

	if err := resolveParents(family, wbsToID); err != nil {
		return nil, err
	}
	return family, nil
}

func checkHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if !isAllowedColumn(h) {
			return nil, schemaErrorf(ErrUnknownColumn, "unknown column %q", h)
		}
		if seen[h] {
			return nil, schemaErrorf(ErrDuplicateColumn, "duplicated column %q", h)
		}
		seen[h] = true
		columns[i] = h
	}
	for _, req := range RequiredColumns {
		if !seen[req] {
			return nil, schemaErrorf(ErrMissingColumn, "missing required column %q", req)
		}
	}
	return columns, nil
}

func personFromRow(lineno int, values row) (*models.Person, error) {
	for _, field := range RequiredColumns {
		if _, ok := values[field]; !ok {
			return nil, fieldErrorf(ErrMissingField, "Line %d: missing required field '%s'", lineno, field)
		}
	}

	id, err := strconv.Atoi(values[ColID])
	if err != nil {
		return nil, fieldErrorf(ErrNotInteger, "Line %d: id must be integer, got %q", lineno, values[ColID])
	}
	if id <= 0 {
		return nil, fieldErrorf(ErrInvalidID, "Line %d: id must be positive, got %d", lineno, id)
	}

	wbs := values[ColWBS]
	if err := CheckWBS(wbs); err != nil {
		return nil, errors.Wrapf(err, "Line %d", lineno)
	}

	p := &models.Person{
		ID:       id,
		WBS:      wbs,
		Name:     values[ColName],
		Gender:   values.optionalString(ColGender),
		ClanName: values.optionalString(ColClanName),
		Location: values.optionalString(ColLocation),
		Note:     values.optionalString(ColNote),
	}
	if p.Generation, err = values.optionalInt(lineno, ColGeneration); err != nil {
		return nil, err
	}
	if p.BirthYear, err = values.optionalInt(lineno, ColBirthYear); err != nil {
		return nil, err
	}
	if p.DeathYear, err = values.optionalInt(lineno, ColDeathYear); err != nil {
		return nil, err
	}
	return p, nil
}

// resolveParents runs after every row is read, so a row may name an ancestor
// that appears later in the input.
func resolveParents(family *models.Family, wbsToID map[string]int) error {
	return family.Each(func(p *models.Person) error {
		parentWBS, ok := ParentWBS(p.WBS)
		if !ok {
			p.ParentID = nil
			return nil
		}
		parentID, found := wbsToID[parentWBS]
		if !found {
			return integrityErrorf(ErrUnresolvedParent, "Person %s (wbs=%s): parent wbs %s not found", p.Name, p.WBS, parentWBS)
		}
		p.ParentID = &parentID
		return nil
	})
}
