// Package generator produces random but structurally valid family data for tests and demos.
package generator

import (
	"encoding/csv"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/models"
)

var (
	firstNames = []string{
		"伟", "芳", "娜", "敏", "静", "丽", "强", "磊", "军", "洋",
		"勇", "艳", "杰", "娟", "涛", "明", "超", "秀英", "华", "鹏",
	}
	locations = []string{"北京", "上海", "广州", "深圳", "杭州", "南京", "西安", "成都", "武汉", "重庆"}
	clanNames = []string{"张", "王", "李", "刘", "陈", "杨", "黄", "赵", "周", "吴"}
)

const startYear = 1800

type Options struct {
	NumRoots    int
	MaxDepth    int // generations per root, root = 1
	MaxChildren int
	Seed        uint64
}

func DefaultOptions() Options {
	return Options{NumRoots: 1, MaxDepth: 5, MaxChildren: 3, Seed: 1}
}

type builder struct {
	opts    Options
	rng     *rand.Rand
	nextID  int
	persons []*models.Person
}

// Generate builds persons in depth-first order with sequential ids starting at 1.
// Every person has generation equal to its wbs depth and a ParentID matching its wbs.
func Generate(opts Options) []*models.Person {
	b := &builder{
		opts:   opts,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		nextID: 1,
	}
	for i := 0; i < opts.NumRoots; i++ {
		b.subtree(strconv.Itoa(i+1), nil, 1, startYear+b.rng.IntN(51))
	}
	return b.persons
}

func (b *builder) pick(list []string) string {
	return list[b.rng.IntN(len(list))]
}

func (b *builder) subtree(wbs string, parentID *int, generation, birthYear int) {
	if generation > b.opts.MaxDepth {
		return
	}
	id := b.nextID
	b.nextID++

	gender := "M"
	if b.rng.IntN(2) == 1 {
		gender = "F"
	}
	clan := b.pick(clanNames)
	location := b.pick(locations)
	gen := generation
	birth := birthYear

	p := &models.Person{
		ID:         id,
		ParentID:   parentID,
		WBS:        wbs,
		Name:       b.pick(clanNames) + b.pick(firstNames),
		Gender:     &gender,
		BirthYear:  &birth,
		Generation: &gen,
		ClanName:   &clan,
		Location:   &location,
	}
	if b.rng.Float64() > 0.1 {
		death := birthYear + 50 + b.rng.IntN(41)
		p.DeathYear = &death
	}
	b.persons = append(b.persons, p)

	numChildren := 0
	if b.opts.MaxChildren > 0 {
		numChildren = b.rng.IntN(b.opts.MaxChildren + 1)
	}
	for i := 0; i < numChildren; i++ {
		childWBS := wbs + "." + strconv.Itoa(i+1)
		b.subtree(childWBS, &id, generation+1, birthYear+20+b.rng.IntN(21))
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// WriteCSV writes persons with the canonical header.
func WriteCSV(w io.Writer, persons []*models.Person) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(genealogy.Columns); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, p := range persons {
		record := []string{
			strconv.Itoa(p.ID),
			p.WBS,
			p.Name,
			optionalString(p.Gender),
			optionalInt(p.BirthYear),
			optionalInt(p.DeathYear),
			optionalInt(p.Generation),
			optionalString(p.ClanName),
			optionalString(p.Location),
			optionalString(p.Note),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write person %d", p.ID)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}

// WriteCSVFile generates data with opts and writes it to path, creating parent directories.
func WriteCSVFile(path string, opts Options) ([]*models.Person, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	persons := Generate(opts)
	if err := WriteCSV(f, persons); err != nil {
		return nil, err
	}
	return persons, nil
}
