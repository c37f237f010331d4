package main

import (
	"gorm.io/gen"

	"github.com/wikimedia/favorites/db/models"
)

//go:generate env GOCACHE=/tmp/go-build go run .
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "../query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyInterface(func(models.FavoriteEntryStore) {}, models.FavoriteEntry{})
	g.ApplyInterface(func(models.PageStore) {}, models.Page{})

	g.Execute()
}
