// Command sketchbench is a fixed demonstration of the PinSketch
// round trip: it builds two pseudo-random sets with a known symmetric
// difference, reconciles them, and reports whether the recovered set
// matches. It takes no flags and opens no network connection — it is
// the Go equivalent of running the reference implementation's
// example.py directly, not a general-purpose CLI.
package main

import (
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"github.com/perlin-network/minisketch-go"
	"github.com/perlin-network/minisketch-go/internal/diag"
)

const (
	capacity   = 16
	commonSize = 200
	diffSize   = 6
)

func main() {
	log := diag.New()
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	common := make([]uint64, commonSize)
	for i := range common {
		common[i] = r.Uint64()
	}

	onlyA := make([]uint64, diffSize)
	onlyB := make([]uint64, diffSize)
	for i := range onlyA {
		onlyA[i] = r.Uint64()
		onlyB[i] = r.Uint64()
	}

	setA := append(append([]uint64{}, common...), onlyA...)
	setB := append(append([]uint64{}, common...), onlyB...)

	start := time.Now()
	sa := minisketch.Encode(setA, capacity)
	sb := minisketch.Encode(setB, capacity)

	roots, err := minisketch.Reconcile(sa, sb)
	elapsed := time.Since(start)

	want := append(append([]uint64{}, onlyA...), onlyB...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	if err != nil {
		log.Error("decode failed", "capacity", capacity, "elapsed", elapsed, "error", err)
		os.Exit(1)
	}

	ok := len(roots) == len(want)
	if ok {
		for i := range roots {
			if roots[i] != want[i] {
				ok = false
				break
			}
		}
	}

	log.Info("reconciled",
		"capacity", capacity,
		"setSizeA", len(setA),
		"setSizeB", len(setB),
		"symmetricDifference", len(want),
		"recovered", len(roots),
		"match", ok,
		"elapsed", elapsed,
	)

	if !ok {
		os.Exit(1)
	}
}
