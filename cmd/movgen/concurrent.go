package main

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

type encoded struct {
	code []byte
	line string
}

type encodedCh chan encoded

func writeFromCh(code, listing io.Writer, ch encodedCh) error {
	var err error
	for e := range ch {
		if err != nil {
			continue
		}
		if _, err = code.Write(e.code); err != nil {
			continue
		}
		_, err = fmt.Fprintln(listing, e.line)
	}
	return err
}

func scheduleGen(cfg config, ch encodedCh) {
	var wg sync.WaitGroup
	wg.Add(cfg.threads)
	for i := 0; i < cfg.threads; i++ {
		go func(i int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(cfg.seed + int64(i)))
			for n := perChunk(cfg.count, cfg.threads, i); n > 0; n-- {
				code, line := randInst(rnd)
				ch <- encoded{code, line}
			}
		}(i)
	}
	wg.Wait()
	close(ch)
}

func concurrentGen(cfg config, code, listing io.Writer) error {
	ch := make(encodedCh, cfg.threads*64)
	go scheduleGen(cfg, ch)
	return writeFromCh(code, listing, ch)
}
