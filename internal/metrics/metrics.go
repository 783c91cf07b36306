package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelItem = "item"

// Метрики: roulette_<name>
var (
	spins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roulette_spins_total",
		Help: "Количество спинов по выпавшему предмету",
	}, []string{labelItem})
	wagered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_stars_wagered_total",
		Help: "Списано звёзд за спины",
	})
	paid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_stars_paid_total",
		Help: "Начислено звёзд за выигрыши",
	})
	bonusClaims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_daily_bonus_claims_total",
		Help: "Выдано ежедневных бонусов",
	})
	bonusStars = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_daily_bonus_stars_total",
		Help: "Звёзд выдано ежедневными бонусами",
	})
	withdrawals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_withdrawals_total",
		Help: "Создано заявок на вывод",
	})
	rejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roulette_actions_rejected_total",
		Help: "Отклоненные действия по причине",
	}, []string{"reason"})
)

func ObserveSpin(item string, cost, credited int) {
	spins.WithLabelValues(item).Inc()
	wagered.Add(float64(cost))
	paid.Add(float64(credited))
}

func ObserveBonus(amount int) {
	bonusClaims.Inc()
	bonusStars.Add(float64(amount))
}

func ObserveWithdrawal() {
	withdrawals.Inc()
}

func ObserveRejected(reason string) {
	rejected.WithLabelValues(reason).Inc()
}
