package roulette

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// totalWeight сумма весов таблицы, веса заданы в процентных пунктах
const totalWeight = 100.0

const weightTolerance = 1e-9

// Source источник равномерных случайных чисел в [0, 1)
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource потокобезопасный генератор math/rand/v2
var DefaultSource Source = globalSource{}

// Table неизменяемая таблица взвешенных записей
type Table[T any] struct {
	entries    []T
	cumulative []float64
	src        Source
}

// NewTable проверяет веса и строит таблицу накопленных вероятностей.
// Пустая таблица, неположительный вес или сумма весов != 100 - ошибка конфигурации
func NewTable[T any](entries []T, weight func(T) float64, src Source) (*Table[T], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	if src == nil {
		src = DefaultSource
	}

	cumulative := make([]float64, len(entries))
	sum := 0.0
	for i, e := range entries {
		w := weight(e)
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidWeight)
		}
		sum += w
		cumulative[i] = sum
	}
	if math.Abs(sum-totalWeight) > weightTolerance {
		return nil, fmt.Errorf("%w: got %g", ErrWeightSum, sum)
	}
	// сумма в пределах допуска: последняя граница ровно 100, иначе r из [sum, 100) никуда не попадет
	cumulative[len(cumulative)-1] = totalWeight

	return &Table[T]{
		entries:    append([]T(nil), entries...),
		cumulative: cumulative,
		src:        src,
	}, nil
}

// Select тянет r в [0, 100) и возвращает первую запись, где r <= накопленный вес
func (t *Table[T]) Select() (T, error) {
	return t.pick(t.src.Float64() * totalWeight)
}

func (t *Table[T]) pick(r float64) (T, error) {
	for i, c := range t.cumulative {
		if r <= c {
			return t.entries[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: r=%g", ErrDrawMissed, r)
}

// Entries копия записей в исходном порядке
func (t *Table[T]) Entries() []T {
	return append([]T(nil), t.entries...)
}

func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Probability доля i-й записи (weight/100)
func (t *Table[T]) Probability(i int) float64 {
	prev := 0.0
	if i > 0 {
		prev = t.cumulative[i-1]
	}
	return (t.cumulative[i] - prev) / totalWeight
}

// ExpectedValue матожидание value по таблице
func (t *Table[T]) ExpectedValue(value func(T) int) float64 {
	ev := 0.0
	for i, e := range t.entries {
		ev += t.Probability(i) * float64(value(e))
	}
	return ev
}
