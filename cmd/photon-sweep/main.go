package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"toy-atom/internal/atom"
)

type paramSet struct {
	attraction float32
	damping    float32
	collision  float32
}

type scenarioResult struct {
	params     paramSet
	meanAbsorb float64
	meanEmit   float64
	collided   int
	expired    int
	runs       int
}

func main() {
	seeds := flag.Int("seeds", 32, "number of seeds per parameter set")
	steps := flag.Int("steps", 600, "tick limit per photon")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	flag.Parse()

	if *seeds <= 0 || *steps <= 0 || *workers <= 0 {
		log.Fatalf("seeds, steps and workers must be positive")
	}

	attractionOptions := []float32{0.03, 0.06, 0.09}
	dampingOptions := []float32{0.6, 0.7, 0.8}
	collisionOptions := []float32{6, 10}

	var sets []paramSet
	for _, a := range attractionOptions {
		for _, d := range dampingOptions {
			for _, c := range collisionOptions {
				sets = append(sets, paramSet{attraction: a, damping: d, collision: c})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %d steps)\n", len(sets), *workers, *seeds, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *seeds, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].expired != all[j].expired {
			return all[i].expired < all[j].expired
		}
		return all[i].meanAbsorb+all[i].meanEmit < all[j].meanAbsorb+all[j].meanEmit
	})

	fmt.Printf("%-10s %-8s %-9s %-10s %-10s %-9s %-7s\n", "attraction", "damping", "collision", "absorb", "emit", "collided", "expired")
	for _, r := range all {
		fmt.Printf("%-10.3f %-8.2f %-9.1f %-10.1f %-10.1f %4d/%-4d %-7d\n",
			r.params.attraction, r.params.damping, r.params.collision,
			r.meanAbsorb, r.meanEmit, r.collided, r.runs, r.expired)
	}
}

func runScenario(p paramSet, seeds, steps int) scenarioResult {
	res := scenarioResult{params: p}
	var absorbTicks, emitTicks int
	for seed := 1; seed <= seeds; seed++ {
		cfg := atom.DefaultConfig()
		cfg.Seed = uint32(seed)
		cfg.Params.Photon = atom.Physics{Attraction: p.attraction, Damping: p.damping}
		cfg.Params.CollisionThreshold = p.collision
		cfg.Params.MaxPhotonAge = steps

		for _, emit := range []bool{false, true} {
			tr := atom.MeasureTransit(cfg, emit, steps+1)
			res.runs++
			if tr.Collided {
				res.collided++
			}
			if tr.Expired {
				res.expired++
			}
			if emit {
				emitTicks += tr.Ticks
			} else {
				absorbTicks += tr.Ticks
			}
		}
	}
	res.meanAbsorb = float64(absorbTicks) / float64(seeds)
	res.meanEmit = float64(emitTicks) / float64(seeds)
	return res
}
