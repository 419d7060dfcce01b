package main

import (
	"bufio"
	"errors"
	"io"
	"math/rand"
	"os"
	"sync"
)

type chunkFiles struct {
	code    string
	listing string
	err     error
}

func createTemp(pattern string) (*os.File, *bufio.Writer, error) {
	file, err := os.CreateTemp(os.TempDir(), pattern)
	if err != nil {
		return nil, nil, err
	}
	return file, bufio.NewWriter(file), nil
}

func createFiles(count int, seed int64) (result chunkFiles) {
	codeFile, code, err := createTemp("movgen_code")
	if err != nil {
		return chunkFiles{err: err}
	}
	defer codeFile.Close()
	result.code = codeFile.Name()

	listingFile, listing, err := createTemp("movgen_listing")
	if err != nil {
		result.err = err
		return result
	}
	defer listingFile.Close()
	result.listing = listingFile.Name()

	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < count && err == nil; i++ {
		err = writeRandInst(rnd, code, listing)
	}
	result.err = errors.Join(err, code.Flush(), listing.Flush())
	return result
}

func appendFile(w io.Writer, name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(w, bufio.NewReader(file))
	return err
}

func mergeFiles(data []chunkFiles, code, listing io.Writer) error {
	var errs []error
	for _, c := range data {
		errs = append(errs, c.err)
		if c.code == "" {
			continue
		}
		defer os.Remove(c.code)
		if c.listing == "" {
			continue
		}
		defer os.Remove(c.listing)
		if c.err == nil {
			errs = append(errs, appendFile(code, c.code), appendFile(listing, c.listing))
		}
	}
	return errors.Join(errs...)
}

func scheduleCreation(cfg config) []chunkFiles {
	result := make([]chunkFiles, cfg.threads)
	var wg sync.WaitGroup

	for i := 0; i < cfg.threads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result[i] = createFiles(perChunk(cfg.count, cfg.threads, i), cfg.seed+int64(i))
		}(i)
	}

	wg.Wait()
	return result
}

func parallelInFileGen(cfg config, code, listing io.Writer) error {
	return mergeFiles(scheduleCreation(cfg), code, listing)
}
