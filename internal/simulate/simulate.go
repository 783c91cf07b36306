// Package simulate прогоняет множество локальных сессий рулетки параллельно
// и собирает сводку по выплатам.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"roulette_backend/internal/roulette"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/panjf2000/ants/v2"
	"gonum.org/v1/gonum/stat"
)

type Config struct {
	Engine          *roulette.Engine
	Sessions        int
	SpinsPerSession int
	StartingBalance int
	// ClaimBonus получить ежедневный бонус в начале каждой сессии
	ClaimBonus bool
	// WithdrawFrom выводить предметы не дешевле этой стоимости (0 - не выводить)
	WithdrawFrom int
	Workers      int
	// Progress куда рисовать прогресс, nil - не рисовать
	Progress io.Writer
}

type Report struct {
	Sessions    int
	Spins       int
	Busted      int
	Wagered     int
	Paid        int
	BonusPaid   int
	Withdrawals int
	ItemCounts  map[string]int

	RTP         float64
	ExpectedRTP float64
	HouseEdge   float64
	// MeanNet и StdNet изменение баланса за сессию
	MeanNet float64
	StdNet  float64

	Duration time.Duration
}

type sessionResult struct {
	spins       int
	busted      bool
	wagered     int
	paid        int
	bonus       int
	withdrawals int
	net         float64
	items       map[string]int
}

func (c Config) validate() error {
	switch {
	case c.Engine == nil:
		return errors.New("engine is required")
	case c.Sessions < 1:
		return errors.New("sessions must be > 0")
	case c.SpinsPerSession < 1:
		return errors.New("spins must be > 0")
	case c.StartingBalance < 0:
		return errors.New("starting balance must not be negative")
	case c.Workers < 1:
		return errors.New("workers must be > 0")
	}
	return nil
}

// Run блокируется до окончания всех сессий или отмены ctx
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	defer pool.Release()

	bar := pb.StartNew(cfg.Sessions)
	if cfg.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(cfg.Progress)
	}

	results := make([]sessionResult, cfg.Sessions)
	errs := make([]error, cfg.Sessions)

	var wg sync.WaitGroup
	for i := range cfg.Sessions {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			defer bar.Increment()
			results[i], errs[i] = runSession(ctx, cfg, i)
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit session %d: %w", i, err)
		}
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return buildReport(cfg, results, used), nil
}

func runSession(ctx context.Context, cfg Config, n int) (sessionResult, error) {
	res := sessionResult{items: make(map[string]int)}
	sess := roulette.NewSession(cfg.Engine, fmt.Sprintf("sim-%d", n), cfg.StartingBalance)

	if cfg.ClaimBonus {
		bonus, err := sess.ClaimBonus(ctx)
		if err != nil {
			return res, err
		}
		res.bonus = bonus.Amount
	}

	credit := cfg.Engine.Rules().CreditWins
	for range cfg.SpinsPerSession {
		spin, err := sess.Spin(ctx)
		if errors.Is(err, roulette.ErrInsufficientFunds) {
			res.busted = true
			break
		}
		if err != nil {
			return res, err
		}

		res.spins++
		res.wagered += spin.Cost
		if credit {
			res.paid += spin.Item.Value
		}
		res.items[spin.Item.Name]++
	}

	if cfg.WithdrawFrom > 0 {
		won := sess.Snapshot().WonItems
		// С конца, чтобы индексы впереди не сдвигались
		for i := len(won) - 1; i >= 0; i-- {
			if won[i].Value < cfg.WithdrawFrom {
				continue
			}
			if _, err := sess.Withdraw(ctx, i); err != nil {
				return res, err
			}
			res.withdrawals++
		}
	}

	res.net = float64(sess.Snapshot().Balance - cfg.StartingBalance)
	return res, nil
}

func buildReport(cfg Config, results []sessionResult, used time.Duration) *Report {
	r := &Report{
		Sessions:   len(results),
		ItemCounts: make(map[string]int),
		HouseEdge:  cfg.Engine.HouseEdge(),
		Duration:   used,
	}

	nets := make([]float64, 0, len(results))
	for _, res := range results {
		r.Spins += res.spins
		r.Wagered += res.wagered
		r.Paid += res.paid
		r.BonusPaid += res.bonus
		r.Withdrawals += res.withdrawals
		if res.busted {
			r.Busted++
		}
		for name, n := range res.items {
			r.ItemCounts[name] += n
		}
		nets = append(nets, res.net)
	}

	if r.Wagered > 0 {
		r.RTP = 100 * float64(r.Paid) / float64(r.Wagered)
	}
	if cost := cfg.Engine.Rules().SpinCost; cost > 0 {
		r.ExpectedRTP = 100 * (float64(cost) - r.HouseEdge) / float64(cost)
	}
	r.MeanNet, r.StdNet = stat.MeanStdDev(nets, nil)

	return r
}
