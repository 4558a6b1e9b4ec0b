package main

import (
	"context"
	"fmt"

	"songbook/internal/store"
)

// bootstrapDemoData seeds one example song into an empty catalogue so
// a fresh install has something to show.
func bootstrapDemoData(ctx context.Context, dataStore *store.Store) error {
	existing, err := dataStore.ListSongs(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: list songs: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	song, err := dataStore.CreateSong(ctx, "Катюша", "Расцветали яблони и груши,\nПоплыли туманы над рекой.")
	if err != nil {
		return fmt.Errorf("bootstrap: create demo song: %w", err)
	}

	if _, err := dataStore.CreateRecording(ctx, song.ID,
		"https://drive.google.com/open?id=0B3NX21EKcTD7ZjFlNTd1T05LNGM", "Хор"); err != nil {
		return fmt.Errorf("bootstrap: create demo recording: %w", err)
	}

	return nil
}
