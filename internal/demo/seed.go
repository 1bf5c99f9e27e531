package demo

import (
	"fmt"

	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/entities"
)

type seedBook struct {
	title       string
	releaseDate string
	author      string // "First Last", resolved against seedAuthors
	genre       string
}

var seedAuthors = []entities.Author{
	{FirstName: "Jane", LastName: "Austen"},
	{FirstName: "George", LastName: "Orwell"},
	{FirstName: "Mary", LastName: "Shelley"},
	{FirstName: "Karel", LastName: "Capek"},
}

var seedGenres = []entities.Genre{
	{Name: "Romance"},
	{Name: "Dystopia"},
	{Name: "Gothic"},
	{Name: "Science Fiction"},
	{Name: "Satire"},
}

var seedBooks = []seedBook{
	{"Pride and Prejudice", "1813-01-28", "Jane Austen", "Romance"},
	{"Emma", "1815-12-23", "Jane Austen", "Romance"},
	{"Persuasion", "1817-12-20", "Jane Austen", "Romance"},
	{"Nineteen Eighty-Four", "1949-06-08", "George Orwell", "Dystopia"},
	{"Animal Farm", "1945-08-17", "George Orwell", "Satire"},
	{"Frankenstein", "1818-01-01", "Mary Shelley", "Gothic"},
	{"The Last Man", "1826-01-01", "Mary Shelley", "Science Fiction"},
	{"R.U.R.", "1920-01-01", "Karel Capek", "Science Fiction"},
	{"War with the Newts", "1936-01-01", "Karel Capek", "Satire"},
}

// Seed wipes the catalog and fills it with sample data. Books are removed
// first so the foreign keys never dangle mid-seed.
func Seed(db *database.Database) error {
	tables := []string{"books", "authors", "genres"}
	for _, table := range tables {
		if err := db.DB.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("wiping %s: %w", table, err)
		}
	}

	authorIDs := make(map[string]uint, len(seedAuthors))
	for _, a := range seedAuthors {
		author := a
		if err := db.DB.Create(&author).Error; err != nil {
			return fmt.Errorf("seeding author %s %s: %w", a.FirstName, a.LastName, err)
		}
		authorIDs[a.FirstName+" "+a.LastName] = author.ID
	}

	genreIDs := make(map[string]uint, len(seedGenres))
	for _, g := range seedGenres {
		genre := g
		if err := db.DB.Create(&genre).Error; err != nil {
			return fmt.Errorf("seeding genre %s: %w", g.Name, err)
		}
		genreIDs[g.Name] = genre.ID
	}

	for _, b := range seedBooks {
		book := entities.Book{
			Title:       b.title,
			ReleaseDate: b.releaseDate,
			AuthorID:    authorIDs[b.author],
			GenreID:     genreIDs[b.genre],
		}
		if err := db.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("seeding book %s: %w", b.title, err)
		}
	}

	return nil
}
