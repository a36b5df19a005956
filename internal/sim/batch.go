package sim

import (
	"sync"

	"arenasim/internal/config"
)

// Share is one combatant's slice of the aggregate damage.
type Share struct {
	Total float64 `json:"total"`
	Ratio float64 `json:"ratio"`
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs        int              `json:"runs"`
	WinRate     float64          `json:"win_rate"`
	AvgDuration float64          `json:"avg_duration"`
	AvgDPS      float64          `json:"avg_dps"`
	TotalDamage float64          `json:"total_damage"`
	ByCombatant map[string]Share `json:"by_combatant"`
}

// RunBatch fans n runs of the scenario over a worker pool, diverging each
// run's seed, and folds the results into a summary. Event recording stays
// off in batch mode.
func RunBatch(pc *config.PartyConfig, ec *config.EnemiesConfig, sc *config.ScenarioConfig, n, workers int) (Summary, error) {
	if workers <= 0 {
		workers = 8
	}
	if n < 1 {
		n = 1
	}

	var (
		mu       sync.Mutex
		wins     int
		sumT     float64
		sumDPS   float64
		byActor  = map[string]float64{}
		firstErr error
	)

	jobs := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				seed := sc.Seed + int64(workerID)*7919 + int64(i)
				runner, err := NewRunner(pc, ec, sc, seed, false)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				res := runner.Run()

				mu.Lock()
				if res.Win {
					wins++
				}
				sumT += res.Duration
				sumDPS += res.DPS
				for id, dmg := range res.DamageBy {
					byActor[id] += dmg
				}
				mu.Unlock()
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Summary{}, firstErr
	}

	totalDamage := 0.0
	for _, dmg := range byActor {
		totalDamage += dmg
	}
	shares := map[string]Share{}
	for id, dmg := range byActor {
		ratio := 0.0
		if totalDamage > 0 {
			ratio = dmg / totalDamage
		}
		shares[id] = Share{Total: dmg, Ratio: ratio}
	}

	return Summary{
		Runs:        n,
		WinRate:     float64(wins) / float64(n),
		AvgDuration: sumT / float64(n),
		AvgDPS:      sumDPS / float64(n),
		TotalDamage: totalDamage,
		ByCombatant: shares,
	}, nil
}
