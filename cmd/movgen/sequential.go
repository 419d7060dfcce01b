package main

import (
	"io"
	"math/rand"
)

func sequentialGen(cfg config, code, listing io.Writer) error {
	rnd := rand.New(rand.NewSource(cfg.seed))
	for i := 0; i < cfg.count; i++ {
		if err := writeRandInst(rnd, code, listing); err != nil {
			return err
		}
	}
	return nil
}
