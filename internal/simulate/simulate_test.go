package simulate

import (
	"bytes"
	"context"
	"math"
	"roulette_backend/internal/roulette"
	"strings"
	"testing"
)

func newEngine(t *testing.T) *roulette.Engine {
	t.Helper()
	e, err := roulette.NewEngine(roulette.DefaultItems(), roulette.DefaultBonuses(), roulette.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRunConvergesToExpectedRTP(t *testing.T) {
	engine := newEngine(t)

	report, err := Run(context.Background(), Config{
		Engine:          engine,
		Sessions:        200,
		SpinsPerSession: 500,
		StartingBalance: 1000,
		Workers:         4,
	})
	if err != nil {
		t.Fatal(err)
	}

	if report.Sessions != 200 {
		t.Fatalf("expected 200 sessions, got %d", report.Sessions)
	}
	total := 0
	for _, n := range report.ItemCounts {
		total += n
	}
	if total != report.Spins || report.Wagered != 25*report.Spins {
		t.Fatalf("inconsistent counters: %+v", report)
	}

	// 30.5 / 25 = 122 %
	if math.Abs(report.ExpectedRTP-122) > 1e-9 {
		t.Fatalf("expected RTP 122, got %f", report.ExpectedRTP)
	}
	if math.Abs(report.RTP-report.ExpectedRTP) > 2 {
		t.Fatalf("simulated RTP %.2f too far from %.2f", report.RTP, report.ExpectedRTP)
	}
}

func TestRunBustsWithoutFunds(t *testing.T) {
	engine := newEngine(t)

	report, err := Run(context.Background(), Config{
		Engine:          engine,
		Sessions:        10,
		SpinsPerSession: 10,
		StartingBalance: 24,
		Workers:         2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Spins != 0 || report.Busted != 10 || report.MeanNet != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRunWithBonusAndWithdrawals(t *testing.T) {
	engine := newEngine(t)

	report, err := Run(context.Background(), Config{
		Engine:          engine,
		Sessions:        20,
		SpinsPerSession: 20,
		StartingBalance: 500,
		ClaimBonus:      true,
		WithdrawFrom:    1,
		Workers:         3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.BonusPaid < 20*5 {
		t.Fatalf("every session must claim at least 5 stars, got %d", report.BonusPaid)
	}
	if report.Withdrawals != report.Spins {
		t.Fatalf("all items must be withdrawn: %d of %d", report.Withdrawals, report.Spins)
	}

	var buf bytes.Buffer
	report.Print(&buf, engine)
	if !strings.Contains(buf.String(), "Мишка") || !strings.Contains(buf.String(), "RTP") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRunValidation(t *testing.T) {
	if _, err := Run(context.Background(), Config{Sessions: 1, SpinsPerSession: 1, Workers: 1}); err == nil {
		t.Fatal("expected error without engine")
	}
	if _, err := Run(context.Background(), Config{Engine: newEngine(t), Sessions: 1, SpinsPerSession: 1}); err == nil {
		t.Fatal("expected error without workers")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Engine: newEngine(t), Sessions: 3, SpinsPerSession: 5, StartingBalance: 100, Workers: 1})
	if err == nil {
		t.Fatal("expected context error")
	}
}
