package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultSimulations = 1000
	defaultWorkers     = 10
)

// MonteCarloConfig holds configuration for a runway stress test
type MonteCarloConfig struct {
	NumSimulations int
	Horizon        int
	Seed           int64
	// TargetMonths is the runway a simulation must reach to count as survived; 0 means the horizon
	TargetMonths int
	// Standard deviations of the sampled annual growth rates, in percentage points
	ExpenseGrowthStdDevPct decimal.Decimal
	RevenueGrowthStdDevPct decimal.Decimal
	Workers                int
}

// MonteCarloResult aggregates the outcomes of a stress test
type MonteCarloResult struct {
	Simulations          []SimulationOutcome `json:"simulations"`
	SurvivalRate         decimal.Decimal     `json:"survival_rate"`
	RunwayPercentiles    RunwayPercentiles   `json:"runway_percentiles"`
	MedianFinalCash      decimal.Decimal     `json:"median_final_cash"`
	FinalCashPercentiles PercentileRanges    `json:"final_cash_percentiles"`
	NumSimulations       int                 `json:"num_simulations"`
	Horizon              int                 `json:"horizon"`
	TargetMonths         int                 `json:"target_months"`
	Seed                 int64               `json:"seed"`
}

// SimulationOutcome is one projection under sampled growth rates
type SimulationOutcome struct {
	AnnualExpenseGrowthPct decimal.Decimal `json:"annual_expense_growth_pct"`
	AnnualRevenueGrowthPct decimal.Decimal `json:"annual_revenue_growth_pct"`
	RunwayMonths           int             `json:"runway_months"`
	FinalCash              decimal.Decimal `json:"final_cash"`
	Survived               bool            `json:"survived"`
}

// RunwayPercentiles holds runway month percentiles
type RunwayPercentiles struct {
	P10 int `json:"p10"`
	P25 int `json:"p25"`
	P50 int `json:"p50"`
	P75 int `json:"p75"`
	P90 int `json:"p90"`
}

// PercentileRanges holds money percentiles
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloSimulator reruns a scenario with its growth rates drawn from
// normal distributions centred on the configured rates.
type MonteCarloSimulator struct {
	Engine *ProjectionEngine
	Config MonteCarloConfig
}

// NewMonteCarloSimulator creates a simulator, filling unset config fields with defaults
func NewMonteCarloSimulator(engine *ProjectionEngine, config MonteCarloConfig) *MonteCarloSimulator {
	if engine == nil {
		engine = NewProjectionEngine()
	}
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.NumSimulations <= 0 {
		config.NumSimulations = defaultSimulations
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}
	if config.Horizon <= 0 {
		config.Horizon = domain.DefaultHorizon
	}
	if config.TargetMonths <= 0 || config.TargetMonths > config.Horizon {
		config.TargetMonths = config.Horizon
	}
	return &MonteCarloSimulator{Engine: engine, Config: config}
}

// RunSimulation executes the stress test. Each simulation draws from its own
// source seeded by Seed+index, so results do not depend on scheduling.
func (mcs *MonteCarloSimulator) RunSimulation(ctx context.Context, params domain.SimulationParameters, injector CostInjector) (*MonteCarloResult, error) {
	cfg := mcs.Config
	log := orNop(mcs.Engine.Logger)
	// per-run debug lines would drown the summary
	runner := &ProjectionEngine{Logger: NopLogger{}}

	results := make([]SimulationOutcome, cfg.NumSimulations)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, cfg.Workers)

	for i := 0; i < cfg.NumSimulations; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("monte carlo cancelled after %d simulations: %w", i, err)
		}
		wg.Add(1)
		semaphore <- struct{}{}
		go func(simIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(cfg.Seed + int64(simIndex)))
			results[simIndex] = mcs.runSingleSimulation(runner, rng, params, injector)
		}(i)
	}
	wg.Wait()

	result := &MonteCarloResult{
		Simulations:          results,
		SurvivalRate:         calculateSurvivalRate(results),
		RunwayPercentiles:    calculateRunwayPercentiles(results),
		FinalCashPercentiles: calculateFinalCashPercentiles(results),
		NumSimulations:       cfg.NumSimulations,
		Horizon:              cfg.Horizon,
		TargetMonths:         cfg.TargetMonths,
		Seed:                 cfg.Seed,
	}
	result.MedianFinalCash = result.FinalCashPercentiles.P50

	log.Infof("monte carlo: %d simulations, survival %s%% at %d months, median runway %d",
		cfg.NumSimulations, result.SurvivalRate.Mul(hundred).StringFixed(1), cfg.TargetMonths, result.RunwayPercentiles.P50)
	return result, nil
}

func (mcs *MonteCarloSimulator) runSingleSimulation(runner *ProjectionEngine, rng *rand.Rand, params domain.SimulationParameters, injector CostInjector) SimulationOutcome {
	p := params
	p.AnnualExpenseGrowthPct = sampleNormal(rng, params.AnnualExpenseGrowthPct, mcs.Config.ExpenseGrowthStdDevPct)
	p.AnnualRevenueGrowthPct = sampleNormal(rng, params.AnnualRevenueGrowthPct, mcs.Config.RevenueGrowthStdDevPct)

	res := runner.Run(p, injector, mcs.Config.Horizon)
	return SimulationOutcome{
		AnnualExpenseGrowthPct: p.AnnualExpenseGrowthPct,
		AnnualRevenueGrowthPct: p.AnnualRevenueGrowthPct,
		RunwayMonths:           res.RunwayMonths,
		FinalCash:              res.Series.FinalCash(),
		Survived:               res.RunwayMonths >= mcs.Config.TargetMonths,
	}
}

// sampleNormal draws mean + z*stdDev rounded to hundredths of a percent
func sampleNormal(rng *rand.Rand, mean, stdDev decimal.Decimal) decimal.Decimal {
	if stdDev.IsZero() {
		return mean
	}
	z := boxMullerTransform(1-rng.Float64(), rng.Float64())
	return mean.Add(decimal.NewFromFloat(z).Mul(stdDev)).Round(2)
}

// boxMullerTransform converts two uniform variables in (0,1] into a standard normal one
func boxMullerTransform(u1, u2 float64) float64 {
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func calculateSurvivalRate(simulations []SimulationOutcome) decimal.Decimal {
	if len(simulations) == 0 {
		return decimal.Zero
	}
	survived := 0
	for _, sim := range simulations {
		if sim.Survived {
			survived++
		}
	}
	return decimal.NewFromInt(int64(survived)).Div(decimal.NewFromInt(int64(len(simulations))))
}

func calculateRunwayPercentiles(simulations []SimulationOutcome) RunwayPercentiles {
	if len(simulations) == 0 {
		return RunwayPercentiles{}
	}
	runways := make([]int, len(simulations))
	for i, sim := range simulations {
		runways[i] = sim.RunwayMonths
	}
	sort.Ints(runways)

	n := len(runways)
	return RunwayPercentiles{
		P10: runways[n/10],
		P25: runways[n/4],
		P50: runways[n/2],
		P75: runways[3*n/4],
		P90: runways[9*n/10],
	}
}

func calculateFinalCashPercentiles(simulations []SimulationOutcome) PercentileRanges {
	if len(simulations) == 0 {
		return PercentileRanges{}
	}
	balances := make([]decimal.Decimal, len(simulations))
	for i, sim := range simulations {
		balances[i] = sim.FinalCash
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].LessThan(balances[j]) })

	n := len(balances)
	return PercentileRanges{
		P10: balances[n/10],
		P25: balances[n/4],
		P50: balances[n/2],
		P75: balances[3*n/4],
		P90: balances[9*n/10],
	}
}
