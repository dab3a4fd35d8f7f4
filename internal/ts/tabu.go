package ts

// tabuList - табу-список: очередь FIFO фиксированной ёмкости,
// реализованная как кольцевой буфер.
type tabuList[S any] struct {
	items    []S
	capacity int
	i        int // позиция самого старого элемента, когда список заполнен
}

// newTabuList создаёт табу-список заданной ёмкости.
func newTabuList[S any](capacity int) *tabuList[S] {
	return &tabuList[S]{
		items:    make([]S, 0, min(capacity, 1024)),
		capacity: capacity,
	}
}

// Add добавляет решение, вытесняя самое старое при заполненном списке.
func (t *tabuList[S]) Add(s S) {
	if len(t.items) < t.capacity {
		t.items = append(t.items, s)
		return
	}
	t.items[t.i] = s
	t.i++
	if t.i >= t.capacity {
		t.i = 0
	}
}

// Items возвращает содержимое списка. Порядок не определён.
func (t *tabuList[S]) Items() []S {
	return t.items
}

// Oldest возвращает самое старое решение в списке.
func (t *tabuList[S]) Oldest() (S, bool) {
	if len(t.items) == 0 {
		var zero S
		return zero, false
	}
	return t.items[t.i], true
}

func (t *tabuList[S]) Len() int {
	return len(t.items)
}
