package models

// PersonRecord is the snapshot row of a Person using GORM.
// It corresponds to the 'people' table; Position keeps the source record order.
type PersonRecord struct {
	ID         int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Position   int     `gorm:"not null;index" json:"position"`
	ParentID   *int    `gorm:"index" json:"parent_id"`
	WBS        string  `gorm:"column:wbs;not null;uniqueIndex" json:"wbs"`
	Name       string  `gorm:"not null" json:"name"`
	Gender     *string `gorm:"" json:"gender,omitempty"`
	BirthYear  *int    `gorm:"" json:"birth_year,omitempty"`
	DeathYear  *int    `gorm:"" json:"death_year,omitempty"`
	Generation *int    `gorm:"" json:"generation,omitempty"`
	ClanName   *string `gorm:"" json:"clan_name,omitempty"`
	Location   *string `gorm:"" json:"location,omitempty"`
	Note       *string `gorm:"" json:"note,omitempty"`
	ExportedAt int64   `gorm:"not null" json:"exported_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (PersonRecord) TableName() string {
	return "people"
}

// NewPersonRecord copies the authoritative fields of p; Children is not stored.
func NewPersonRecord(p *Person, position int, exportedAt int64) PersonRecord {
	return PersonRecord{
		ID:         p.ID,
		Position:   position,
		ParentID:   p.ParentID,
		WBS:        p.WBS,
		Name:       p.Name,
		Gender:     p.Gender,
		BirthYear:  p.BirthYear,
		DeathYear:  p.DeathYear,
		Generation: p.Generation,
		ClanName:   p.ClanName,
		Location:   p.Location,
		Note:       p.Note,
		ExportedAt: exportedAt,
	}
}

// ToPerson converts the row back to a Person without children.
func (r PersonRecord) ToPerson() *Person {
	return &Person{
		ID:         r.ID,
		ParentID:   r.ParentID,
		WBS:        r.WBS,
		Name:       r.Name,
		Gender:     r.Gender,
		BirthYear:  r.BirthYear,
		DeathYear:  r.DeathYear,
		Generation: r.Generation,
		ClanName:   r.ClanName,
		Location:   r.Location,
		Note:       r.Note,
	}
}
