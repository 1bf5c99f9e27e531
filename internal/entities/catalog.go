package entities

// Author is a person who writes books, tracked by name only.
// Name pairs are not unique; two authors may share a name.
type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null;size:256" json:"first_name"`
	LastName  string `gorm:"not null;size:256" json:"last_name"`
}

// Genre is a named literary category, globally unique by name.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:100" json:"name"`
}

// Book is a titled work attributed to exactly one author and one genre.
// ReleaseDate is stored as an ISO date string and is not validated.
type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"index;not null;size:512" json:"title"`
	ReleaseDate string `gorm:"not null" json:"release_date"`
	AuthorID    uint   `gorm:"index;not null" json:"author_id"`
	GenreID     uint   `gorm:"index;not null" json:"genre_id"`

	Author Author `gorm:"foreignKey:AuthorID" json:"-"`
	Genre  Genre  `gorm:"foreignKey:GenreID" json:"-"`
}

func (Author) TableName() string {
	return "authors"
}

func (Genre) TableName() string {
	return "genres"
}

func (Book) TableName() string {
	return "books"
}
