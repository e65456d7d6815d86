package data

import "sync"

type Lazy[T any] interface {
	Get() T
}

// LazyLoad loads its value once, on the first Get.
// A failed load is not retried; Get returns the zero value and Err reports why.
type LazyLoad[T any] struct {
	m      sync.Mutex
	done   bool
	value  T
	err    error
	loadFn func() (T, error)
}

func LazyLoadFn[T any](load func() (T, error)) *LazyLoad[T] {
	return &LazyLoad[T]{loadFn: load}
}

func LazyLoadValue[T any](v T) *LazyLoad[T] {
	return &LazyLoad[T]{
		done:  true,
		value: v,
	}
}

func (l *LazyLoad[T]) Get() T {
	l.m.Lock()
	defer l.m.Unlock()
	l.load()
	return l.value
}

func (l *LazyLoad[T]) Err() error {
	l.m.Lock()
	defer l.m.Unlock()
	l.load()
	return l.err
}

// Loaded reports whether the value is already available without a load.
func (l *LazyLoad[T]) Loaded() bool {
	l.m.Lock()
	defer l.m.Unlock()
	return l.done
}

// Materialized returns the value of l if it is already loaded without error.
// It never triggers a load. Lazy implementations other than *LazyLoad are read through Get.
func Materialized[T any](l Lazy[T]) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	lazy, ok := l.(*LazyLoad[T])
	if !ok {
		return l.Get(), true
	}
	if lazy == nil {
		return zero, false
	}
	lazy.m.Lock()
	defer lazy.m.Unlock()
	if !lazy.done || lazy.err != nil {
		return zero, false
	}
	return lazy.value, true
}

func (l *LazyLoad[T]) load() {
	if l.done {
		return
	}
	l.done = true
	if l.loadFn == nil {
		return
	}
	var value T
	value, l.err = l.loadFn()
	if l.err == nil {
		l.value = value
	}
	l.loadFn = nil
}
