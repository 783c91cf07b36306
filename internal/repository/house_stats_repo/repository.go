package house_stats_repo

import (
	"roulette_backend/internal/model"
	"sync"
)

// defaultWindowSize размер окна последних спинов для расчета RTP
const defaultWindowSize = 500

type spinRecord struct {
	wagered int
	paid    int
}

// StateRepo хранит агрегаты рулетки в памяти процесса
type StateRepo struct {
	mtx sync.RWMutex

	totalSpins   int
	totalWagered int
	totalPaid    int

	window     []spinRecord
	windowSize int
}

// NewHouseStatsRepository создает репозиторий с окном windowSize (<= 0 - окно по умолчанию)
func NewHouseStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		window:     make([]spinRecord, 0, windowSize),
		windowSize: windowSize,
	}
}

// UpdateState учитывает один спин: wagered - списано, paid - начислено игроку
func (r *StateRepo) UpdateState(wagered, paid int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalSpins++
	r.totalWagered += wagered
	r.totalPaid += paid

	// Поддерживаем размер окна
	if len(r.window) == r.windowSize {
		copy(r.window, r.window[1:])
		r.window = r.window[:len(r.window)-1]
	}
	r.window = append(r.window, spinRecord{wagered: wagered, paid: paid})
}

// HouseStats копия текущих агрегатов. RTP в процентах
func (r *StateRepo) HouseStats() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowWagered, windowPaid int
	for _, s := range r.window {
		windowWagered += s.wagered
		windowPaid += s.paid
	}

	return model.HouseStats{
		TotalSpins:   r.totalSpins,
		TotalWagered: r.totalWagered,
		TotalPaid:    r.totalPaid,
		CurrentRTP:   rtp(r.totalPaid, r.totalWagered),
		WindowRTP:    rtp(windowPaid, windowWagered),
		WindowSize:   len(r.window),
	}
}

func rtp(paid, wagered int) float64 {
	if wagered == 0 {
		return 0
	}
	return float64(paid) / float64(wagered) * 100
}
