package main

import (
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/jarretjeter/Spotify-Data-Loader/config"
	"github.com/jarretjeter/Spotify-Data-Loader/consts"
	"github.com/jarretjeter/Spotify-Data-Loader/database"
	"github.com/jarretjeter/Spotify-Data-Loader/dataset"
	"github.com/jarretjeter/Spotify-Data-Loader/log"
	"github.com/jarretjeter/Spotify-Data-Loader/table"
)

var artistsPath *string
var albumsPath *string
var configPath *string
var dbHost *string
var dbPort *int
var dbUser *string
var dbPassword *string
var dbName *string
var dropFirst *bool

//  usage example:
//      ./loader --artists_path data/spotify_artists.csv --albums_path data/spotify_albums.csv \
//               --db_host 127.0.0.1 --db_port 3306 --db_user root --db_password secret
func init() {
	artistsPath = flag.String("artists_path", consts.DefaultArtistsPath, "path of the artists CSV file")
	albumsPath = flag.String("albums_path", consts.DefaultAlbumsPath, "path of the albums CSV file")
	configPath = flag.String("config", "loader.yaml", "path of an optional YAML connection config")
	dbHost = flag.String("db_host", consts.DefaultHost, "host of dst database address")
	dbPort = flag.Int("db_port", consts.DefaultPort, "port of dst database address")
	dbUser = flag.String("db_user", consts.DefaultUser, "user name of dst database")
	dbPassword = flag.String("db_password", "", "password of dst database")
	dbName = flag.String("db_name", consts.DefaultDatabase, "name of dst database")
	dropFirst = flag.Bool("drop_first", true, "drop both tables before creating them")

	flag.Parse()
}

func main() {
	start := time.Now().UnixNano()
	if err := _main(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Infof("time-consuming %dms", (time.Now().UnixNano()-start)/1e6)
}

// resolveConfig merges connection settings: flags > environment > YAML
// file > defaults. A missing config file is only an error when --config
// was set explicitly.
func resolveConfig() (config.Config, error) {
	cfg := config.Default()
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	fileCfg, err := config.Load(*configPath)
	switch {
	case err == nil:
		cfg = *fileCfg
	case errors.Is(err, config.ErrConfigNotFound) && !explicit["config"]:
	default:
		return cfg, err
	}

	cfg.ApplyEnv()

	if explicit["db_host"] {
		cfg.Host = *dbHost
	}
	if explicit["db_port"] {
		cfg.Port = *dbPort
	}
	if explicit["db_user"] {
		cfg.User = *dbUser
	}
	if explicit["db_password"] {
		cfg.Password = *dbPassword
	}
	if explicit["db_name"] {
		cfg.Database = *dbName
	}
	return cfg, nil
}

func _main() error {
	logger := log.New("loader")

	artists, err := dataset.Load(*artistsPath, logger)
	if err != nil {
		return err
	}
	albums, err := dataset.Load(*albumsPath, logger)
	if err != nil {
		return err
	}
	preview(logger, artists)
	preview(logger, albums)

	if err := artists.AddIndex("id", []string{"id"}); err != nil {
		return err
	}
	if err := albums.AddIndex("album", []string{"name", "artist_id", "release_date"}); err != nil {
		return err
	}
	if err := artists.SortBy("name"); err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := table.CreateSchema(db, logger, *dropFirst); err != nil {
		return err
	}
	if err := artists.LoadTable(db, table.Artists); err != nil {
		return err
	}
	if err := albums.LoadTable(db, table.Albums); err != nil {
		return err
	}

	for _, t := range []table.Table{table.Artists, table.Albums} {
		total, err := table.Count(db, t)
		if err != nil {
			return err
		}
		logger.Infof("table %s total %d", t, total)
	}
	return nil
}

func preview(logger *log.Logger, d *dataset.Dataset) {
	logger.Infof("%s columns: %s", d.Name, strings.Join(d.Columns, ","))
	for _, row := range d.Preview() {
		logger.Infof("%s | %s", d.Name, strings.Join(row, ","))
	}
}
