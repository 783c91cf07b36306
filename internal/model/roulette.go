package model

// RewardItem предмет рулетки. Weight - вероятность в процентных пунктах
type RewardItem struct {
	Name   string  `yaml:"name"`
	Value  int     `yaml:"value"`
	Weight float64 `yaml:"weight"`
	Emoji  string  `yaml:"emoji"`
}

// BonusTier одна ступень ежедневного бонуса
type BonusTier struct {
	Amount int     `yaml:"amount"`
	Weight float64 `yaml:"weight"`
}

type Spin struct {
	UserID int64
}

type SpinResult struct {
	Item    RewardItem
	Cost    int
	Balance int
}

type DailyBonus struct {
	UserID int64
}

type BonusResult struct {
	Amount  int
	Balance int
}
