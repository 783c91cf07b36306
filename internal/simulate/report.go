package simulate

import (
	"io"
	"roulette_backend/internal/roulette"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Print пишет сводку. Предметы в порядке таблицы рулетки, одинаковые имена считаются вместе
func (r *Report) Print(w io.Writer, engine *roulette.Engine) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "sessions    : %d (busted %d)\n", r.Sessions, r.Busted)
	p.Fprintf(w, "spins       : %d\n", r.Spins)
	p.Fprintf(w, "wagered     : %d\n", r.Wagered)
	p.Fprintf(w, "paid        : %d\n", r.Paid)
	p.Fprintf(w, "daily bonus : %d\n", r.BonusPaid)
	p.Fprintf(w, "withdrawals : %d\n", r.Withdrawals)
	p.Fprintf(w, "RTP         : %.2f %% (expected %.2f %%)\n", r.RTP, r.ExpectedRTP)
	p.Fprintf(w, "house edge  : %.2f per spin\n", r.HouseEdge)
	p.Fprintf(w, "net/session : %.2f ± %.2f\n", r.MeanNet, r.StdNet)

	sec := r.Duration.Seconds()
	if sec > 0 {
		p.Fprintf(w, "used        : %.2f seconds, %d spins/sec\n", sec, int(float64(r.Spins)/sec))
	}

	items := engine.Items()
	for i, it := range items.Entries() {
		share := 0.0
		if r.Spins > 0 {
			share = 100 * float64(r.ItemCounts[it.Name]) / float64(r.Spins)
		}
		p.Fprintf(w, "  %s %-10s %8d  %6.2f %% (table %.2f %%)\n",
			it.Emoji, it.Name, r.ItemCounts[it.Name], share, 100*items.Probability(i))
	}
}
