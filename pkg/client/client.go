// Package client клиент JSON API рулетки. Держит кэш состояния сессии и
// пропускает не больше одного изменяющего вызова за раз.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultSpinCost = 25
	// maxErrorBody сколько читать из ответа с ошибкой
	maxErrorBody = 4 << 10
	// withdrawalCreated статус успешно созданной заявки на вывод
	withdrawalCreated = "withdrawal_created"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout ограничение на один HTTP вызов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithSpinCost цена спина для локальной проверки баланса
func WithSpinCost(cost int) Option {
	return func(c *Client) { c.spinCost = cost }
}

type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	spinCost int

	// action занят на время изменяющего вызова
	action sync.Mutex

	mtx    sync.RWMutex
	state  State
	loaded bool
}

func New(baseURL string, userID int64, username string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     http.DefaultClient,
		timeout:  defaultTimeout,
		spinCost: defaultSpinCost,
		state:    State{UserID: userID, Username: username},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State копия кэша
func (c *Client) State() State {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	st := c.state
	st.Items = slices.Clone(c.state.Items)
	return st
}

func (c *Client) begin() (func(), error) {
	if !c.action.TryLock() {
		return nil, ErrActionInFlight
	}
	return c.action.Unlock, nil
}

// Register регистрирует пользователя (повторно - без изменений) и загружает состояние
func (c *Client) Register(ctx context.Context) (State, error) {
	done, err := c.begin()
	if err != nil {
		return State{}, err
	}
	defer done()

	st := c.State()
	err = c.call(ctx, "register", http.MethodPost, "/api/register",
		registerRequest{UserID: st.UserID, Username: st.Username}, nil)
	if err != nil {
		return State{}, err
	}
	return c.refresh(ctx)
}

// Refresh перечитывает пользователя и инвентарь
func (c *Client) Refresh(ctx context.Context) (State, error) {
	done, err := c.begin()
	if err != nil {
		return State{}, err
	}
	defer done()

	return c.refresh(ctx)
}

func (c *Client) refresh(ctx context.Context) (State, error) {
	id := strconv.FormatInt(c.State().UserID, 10)

	var user userResponse
	if err := c.call(ctx, "get user", http.MethodGet, "/api/user/"+id, nil, &user); err != nil {
		return State{}, err
	}

	var items []Item
	if err := c.call(ctx, "inventory", http.MethodGet, "/api/inventory/"+id, nil, &items); err != nil {
		return State{}, err
	}

	c.mtx.Lock()
	c.state.Username = user.Username
	c.state.Balance = user.Balance
	c.state.LastDailyBonus = user.LastDailyBonus
	c.state.Items = items
	c.loaded = true
	c.mtx.Unlock()

	return c.State(), nil
}

// Spin крутит рулетку. Если состояние уже загружено и баланса не хватает,
// запрос не отправляется. При ошибке обновления кэша результат спина все равно возвращается
func (c *Client) Spin(ctx context.Context) (SpinResult, error) {
	done, err := c.begin()
	if err != nil {
		return SpinResult{}, err
	}
	defer done()

	c.mtx.RLock()
	short := c.loaded && c.state.Balance < c.spinCost
	userID := c.state.UserID
	c.mtx.RUnlock()
	if short {
		return SpinResult{}, ErrInsufficientFunds
	}

	var res SpinResult
	if err := c.call(ctx, "spin", http.MethodPost, "/api/spin-roulette", userRequest{UserID: userID}, &res); err != nil {
		return SpinResult{}, err
	}

	c.setBalance(res.NewBalance)
	_, err = c.refresh(ctx)
	return res, err
}

func (c *Client) ClaimBonus(ctx context.Context) (BonusResult, error) {
	done, err := c.begin()
	if err != nil {
		return BonusResult{}, err
	}
	defer done()

	var res BonusResult
	if err := c.call(ctx, "daily bonus", http.MethodPost, "/api/daily-bonus", userRequest{UserID: c.State().UserID}, &res); err != nil {
		return BonusResult{}, err
	}

	c.setBalance(res.NewBalance)
	_, err = c.refresh(ctx)
	return res, err
}

// Withdraw выводит предмет по индексу в State().Items
func (c *Client) Withdraw(ctx context.Context, index int) (WithdrawResult, error) {
	done, err := c.begin()
	if err != nil {
		return WithdrawResult{}, err
	}
	defer done()

	st := c.State()
	if index < 0 || index >= len(st.Items) {
		return WithdrawResult{}, ErrIndexOutOfRange
	}
	item := st.Items[index]

	var res WithdrawResult
	err = c.call(ctx, "withdraw", http.MethodPost, "/api/withdraw", withdrawRequest{
		UserID:    st.UserID,
		Username:  st.Username,
		ItemName:  item.Name,
		ItemValue: item.Value,
		ItemID:    item.ID,
	}, &res)
	if err != nil {
		return WithdrawResult{}, err
	}
	if res.Status != withdrawalCreated {
		return WithdrawResult{}, &ServerRejectedError{
			Op:         "withdraw",
			StatusCode: http.StatusOK,
			Message:    "unexpected withdrawal status " + strconv.Quote(res.Status),
		}
	}

	_, err = c.refresh(ctx)
	return res, err
}

func (c *Client) setBalance(balance int) {
	c.mtx.Lock()
	c.state.Balance = balance
	c.mtx.Unlock()
}

// call выполняет один запрос. out == nil - тело успешного ответа не нужно
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &RemoteCallError{Op: op, Err: err}
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &RemoteCallError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteCallError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if msg := errorMessage(raw); msg != "" {
			return &ServerRejectedError{Op: op, StatusCode: resp.StatusCode, Message: msg}
		}
		return &RemoteCallError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteCallError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	// сервер может отказать и с 2xx, прислав {"error": msg}
	if msg := errorMessage(raw); msg != "" {
		return &ServerRejectedError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RemoteCallError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage текст ошибки из тела-объекта, "" если его нет
func errorMessage(raw []byte) string {
	if json.Get(raw).ValueType() != jsoniter.ObjectValue {
		return ""
	}
	var e errorResponse
	if json.Unmarshal(raw, &e) != nil {
		return ""
	}
	return e.Error
}
