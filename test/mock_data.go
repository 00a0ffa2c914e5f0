package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/jarretjeter/Spotify-Data-Loader/log"
	"github.com/jarretjeter/Spotify-Data-Loader/util"
)

// Generates sample artists/albums CSV files under data/ so the loader can
// be exercised without the real Spotify dump.
func main() {
	rows := 1000
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			rows = n
		}
	}
	if err := os.MkdirAll("data", 0o755); err != nil {
		panic(err)
	}

	artistIDs := make([]string, rows)
	for i := range artistIDs {
		artistIDs[i] = uuid.NewString()
	}

	writeCSV(util.AssemblePath("data", "spotify_artists.csv"),
		[]string{"id", "name", "artist_popularity", "followers", "genres", "track_id", "track_id_prev", "type"},
		rows,
		func(i int) []string {
			return []string{
				artistIDs[i],
				fmt.Sprintf("artist %04d", rand.Intn(10000)),
				strconv.Itoa(rand.Intn(100)),
				strconv.Itoa(rand.Intn(10000000)),
				"['indie','rock']",
				uuid.NewString(),
				uuid.NewString(),
				"artist",
			}
		})

	writeCSV(util.AssemblePath("data", "spotify_albums.csv"),
		[]string{"id", "name", "album_type", "artist_id", "available_markets", "external_urls", "href", "images",
			"release_date", "release_date_precision", "total_tracks", "track_id", "track_name_prev", "uri", "type"},
		rows,
		func(i int) []string {
			id := uuid.NewString()
			return []string{
				id,
				fmt.Sprintf("album %04d", rand.Intn(10000)),
				"album",
				artistIDs[rand.Intn(len(artistIDs))],
				"['US','GB','DE']",
				fmt.Sprintf("{'spotify': 'https://open.spotify.com/album/%s'}", id),
				fmt.Sprintf("https://api.spotify.com/v1/albums/%s", id),
				"[]",
				fmt.Sprintf("%d-%02d-%02d", 1960+rand.Intn(60), 1+rand.Intn(12), 1+rand.Intn(28)),
				"day",
				strconv.Itoa(1 + rand.Intn(20)),
				uuid.NewString(),
				fmt.Sprintf("track %04d", rand.Intn(10000)),
				fmt.Sprintf("spotify:album:%s", id),
				"album",
			}
		})
}

func writeCSV(path string, header []string, rows int, row func(i int) []string) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		panic(err)
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(row(i)); err != nil {
			panic(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		panic(err)
	}
	log.Infof("write file %s, %d rows", path, rows)
}
