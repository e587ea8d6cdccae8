package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/freeeve/statecraft/internal/repository"
)

func printSaves(ctx context.Context, store repository.SaveStore) error {
	saves, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(saves) == 0 {
		fmt.Println("Aucune sauvegarde.")
		return nil
	}
	for _, s := range saves {
		fmt.Printf("%-20s %-12s semaine %-4d %s\n", s.Name, s.PlayerCountry, s.Turn, humanize.Time(s.SavedAt))
	}
	return nil
}
