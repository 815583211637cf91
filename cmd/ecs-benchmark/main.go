// Profiling:
// go build ./cmd/ecs-benchmark
// ./ecs-benchmark -profile=cpu
// go tool pprof -http=":8000" ./ecs-benchmark cpu.pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/mecs/engine"
)

type position struct {
	X, Y int64
}

type velocity struct {
	DX, DY int64
}

type mass struct {
	M int64
}

var (
	entitiesFlag = flag.Int("entities", 10000, "Number of entities")
	itersFlag    = flag.Int("iters", 1000, "Query iterations")
	roundsFlag   = flag.Int("rounds", 5, "Create/query/destroy rounds")
	profileFlag  = flag.String("profile", "", "Profile mode: cpu, mem or empty for none")
)

func main() {
	flag.Parse()
	os.Exit(benchmark())
}

// benchmark returns the process exit code so deferred profile writers run first
func benchmark() int {
	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profileFlag)
		return 2
	}

	start := time.Now()
	visited, err := run(*roundsFlag, *itersFlag, *entitiesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark failed: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)

	fmt.Printf("rounds=%d iters=%d entities=%d visited=%d elapsed=%s per-visit=%s\n",
		*roundsFlag, *itersFlag, *entitiesFlag, visited, elapsed,
		elapsed/time.Duration(max(visited, 1)))
	return 0
}

// run fills a registry, scans it with 2- and 3-way queries, then destroys everything
func run(rounds, iters, numEntities int) (int, error) {
	visited := 0
	for range rounds {
		r := engine.NewRegistry(engine.Config{MaxEntities: numEntities})
		pos := engine.Register[position](r, "position")
		vel := engine.Register[velocity](r, "velocity")
		ms := engine.Register[mass](r, "mass")

		entities := make([]engine.Entity, 0, numEntities)
		for i := range numEntities {
			e, err := r.CreateEntity()
			if err != nil {
				return visited, err
			}
			pos.Set(e, position{X: int64(i)})
			vel.Set(e, velocity{DX: 1, DY: 1})
			if i%2 == 0 {
				ms.Set(e, mass{M: 2})
			}
			entities = append(entities, e)
		}

		for range iters {
			engine.Each2(pos, vel, func(_ engine.Entity, p *position, v *velocity) {
				p.X += v.DX
				p.Y += v.DY
				visited++
			})
			engine.Each3(pos, vel, ms, func(_ engine.Entity, _ *position, v *velocity, m *mass) {
				v.DX = m.M
				visited++
			})
		}

		for _, e := range entities {
			r.DestroyEntity(e)
		}
	}
	return visited, nil
}
