// Package lock сериализует изменяющие действия одного пользователя:
// в каждый момент по ключу выполняется не более одного действия.
package lock

import (
	"context"
	"strconv"
)

// Locker захватывает блокировку по ключу. unlock нужно вызвать ровно один раз
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// UserKey ключ блокировки пользователя
func UserKey(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}
