// Builds a pak asset archive out of a directory tree, or lists the
// contents of an existing archive.
package main

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/kanva/pak"
)

var (
	dir    = flag.String("dir", "", "directory to archive")
	out    = flag.String("out", "assets.pak", "archive file to write")
	author = flag.String("author", "", "author recorded in the archive header")
	list   = flag.String("list", "", "archive whose contents to list instead of building")
)

func listArchive(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	archive, err := pak.Open(f)
	if err != nil {
		return err
	}
	header := archive.Header()
	log.WithFields(log.Fields{
		"author":  header.Author,
		"version": header.Version,
		"files":   len(header.Index),
	}).Info(path)
	for _, entry := range header.Index {
		log.WithFields(log.Fields{
			"size":       entry.Size,
			"compressed": entry.CompressedSize,
		}).Info(entry.Name)
	}
	return nil
}

func buildArchive(dir, out string) error {
	builder := pak.NewBuilder(pak.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     1,
	})

	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		log.WithField("size", len(data)).Info(name)
		return builder.Add(filepath.ToSlash(name), data)
	}); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	written, err := builder.WriteTo(f)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"archive": out,
		"bytes":   written,
	}).Info("archive written")
	return nil
}

func main() {
	flag.Parse()

	if *list != "" {
		if err := listArchive(*list); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *dir == "" {
		log.Fatal("a -dir to archive is required")
	}
	if err := buildArchive(*dir, *out); err != nil {
		log.Fatal(err)
	}
}
