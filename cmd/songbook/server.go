package main

import (
	"net/http"

	"songbook/internal/app/photos"
	"songbook/internal/app/songs"
	"songbook/internal/cache"
	"songbook/internal/store"
	"songbook/internal/web"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) (http.Handler, error) {
	c := cache.NewMemory(cfg.CacheTTL)

	songSvc := songs.New(dataStore, c)
	photoSvc := photos.New(dataStore)

	srv, err := web.New(songSvc, photoSvc)
	if err != nil {
		return nil, err
	}

	return web.RequestLogging(web.Recovery(srv.Routes())), nil
}
