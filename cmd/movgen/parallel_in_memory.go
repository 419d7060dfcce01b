package main

import (
	"bytes"
	"io"
	"math/rand"
	"sync"
)

type chunk struct {
	code    bytes.Buffer
	listing bytes.Buffer
}

func create(count int, seed int64) *chunk {
	c := new(chunk)
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < count; i++ {
		// bytes.Buffer writes never fail
		writeRandInst(rnd, &c.code, &c.listing)
	}
	return c
}

func merge(data chan *chunk, code, listing io.Writer) error {
	var err error
	for c := range data {
		if err != nil {
			continue
		}
		if _, err = c.code.WriteTo(code); err != nil {
			continue
		}
		_, err = c.listing.WriteTo(listing)
	}
	return err
}

func schedule(cfg config) chan *chunk {
	var wg sync.WaitGroup

	ch := make(chan *chunk, cfg.threads)
	for i := 0; i < cfg.threads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch <- create(perChunk(cfg.count, cfg.threads, i), cfg.seed+int64(i))
		}(i)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	return ch
}

func parallelInMemoryGen(cfg config, code, listing io.Writer) error {
	return merge(schedule(cfg), code, listing)
}
