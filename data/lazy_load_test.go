package data_test

import (
	"errors"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazyLoad(t *testing.T) {
	type Company struct {
		ID   uint
		Name string
	}
	kakao := Company{
		ID:   1,
		Name: "kakao",
	}

	t.Run("value", func(t *testing.T) {
		lazy := data.LazyLoadValue(kakao)
		assert.True(t, lazy.Loaded())
		assert.Equal(t, kakao, lazy.Get())
		assert.Nil(t, lazy.Err())
	})

	t.Run("load once", func(t *testing.T) {
		var calls int32
		lazy := data.LazyLoadFn(func() (Company, error) {
			atomic.AddInt32(&calls, 1)
			return kakao, nil
		})
		assert.False(t, lazy.Loaded())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, kakao, lazy.Get())
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.True(t, lazy.Loaded())
	})

	t.Run("load error", func(t *testing.T) {
		failure := errors.New("not loaded")
		lazy := data.LazyLoadFn(func() (Company, error) {
			return Company{ID: 2}, failure
		})
		assert.Empty(t, lazy.Get())
		assert.ErrorIs(t, lazy.Err(), failure)
	})

	t.Run("materialized", func(t *testing.T) {
		value, ok := data.Materialized[Company](data.LazyLoadValue(kakao))
		assert.True(t, ok)
		assert.Equal(t, kakao, value)

		var calls int32
		pending := data.LazyLoadFn(func() (Company, error) {
			atomic.AddInt32(&calls, 1)
			return kakao, nil
		})
		_, ok = data.Materialized[Company](pending)
		assert.False(t, ok)
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

		pending.Get()
		value, ok = data.Materialized[Company](pending)
		assert.True(t, ok)
		assert.Equal(t, kakao, value)

		failed := data.LazyLoadFn(func() (Company, error) {
			return Company{}, errors.New("not loaded")
		})
		failed.Get()
		_, ok = data.Materialized[Company](failed)
		assert.False(t, ok)

		_, ok = data.Materialized[Company](nil)
		assert.False(t, ok)
		var unset *data.LazyLoad[Company]
		_, ok = data.Materialized[Company](unset)
		assert.False(t, ok)
	})

	t.Run("as lazy interface", func(t *testing.T) {
		var lazy data.Lazy[Company] = data.LazyLoadValue(kakao)
		assert.Equal(t, kakao.Name, lazy.Get().Name)
	})
}
