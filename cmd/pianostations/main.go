package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.senan.xyz/flagconf"

	"github.com/sublime-music/piano/pkg/piano"
)

func main() {
	confBaseURL := flag.String("base-url", piano.DefaultBaseURL, "service root url (optional)")
	confUsername := flag.String("username", "", "listener user name")
	confPassword := flag.String("password", "", "listener password")
	confEncryptKey := flag.String("encrypt-key", "", "hex encoded key for request bodies")
	confDecryptKey := flag.String("decrypt-key", "", "hex encoded key for audio urls")
	confStation := flag.String("station", "", "id of a station to print the playlist of (optional)")
	confDebug := flag.Bool("debug", false, "log every call (optional)")
	confConfigPath := flag.String("config-path", "", "path to config (optional)")
	flag.Parse()
	flagconf.ParseEnv()
	flagconf.ParseConfig(*confConfigPath)

	level := zerolog.InfoLevel
	if *confDebug {
		level = zerolog.TraceLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *confUsername == "" || *confPassword == "" {
		log.Fatal().Msg("please provide a username and password")
	}

	encrypter, err := blowfishFromHex(*confEncryptKey)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid encrypt key")
	}
	decrypter, err := blowfishFromHex(*confDecryptKey)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid decrypt key")
	}

	client, err := piano.NewClient(piano.ClientConfig{
		BaseURL:   *confBaseURL,
		Encrypter: encrypter,
		Decrypter: decrypter,
		Logger:    log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if _, err := client.Login(ctx, *confUsername, *confPassword); err != nil {
		log.Fatal().Err(err).Msg("error logging in")
	}

	stations, err := client.GetStations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error listing stations")
	}
	for _, station := range stations {
		fmt.Printf("%s\t%s\n", station.ID, station.Name)
	}

	if *confStation == "" {
		return
	}
	songs, err := client.GetPlaylist(ctx, *confStation, piano.AudioFormatMP3)
	if err != nil {
		log.Fatal().Err(err).Str("station_id", *confStation).Msg("error fetching playlist")
	}
	for _, song := range songs {
		fmt.Printf("%s - %s [%s]\n\t%s\n", song.Artist, song.Title, song.Rating, song.AudioURL)
	}
}

func blowfishFromHex(key string) (*piano.Blowfish, error) {
	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, err
	}
	return piano.NewBlowfish(raw)
}
