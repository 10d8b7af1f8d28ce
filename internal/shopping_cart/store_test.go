package shopping_cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	myErr "cafenate-cart/internal/types/errors"
)

func setup(t *testing.T) *Store {
	return NewStore(zaptest.NewLogger(t).Sugar())
}

func latte16() LineItem {
	return LineItem{ID: 101, Name: "Iced Caramel Macchiato (16oz)", UnitPrice: decimal.NewFromInt(100), Size: "16oz", Quantity: 1}
}

func spanish22() LineItem {
	return LineItem{ID: 202, Name: "Iced Spanish Latte (22oz)", UnitPrice: decimal.NewFromInt(140), Size: "22oz", Quantity: 1}
}

func americano16() LineItem {
	return LineItem{ID: 501, Name: "Iced Americano (16oz)", UnitPrice: decimal.NewFromInt(80), Size: "16oz", Quantity: 1}
}

func TestStore_Add(t *testing.T) {
	tests := []struct {
		name         string
		prepare      func(s *Store)
		item         LineItem
		expectedIDs  []int
		expectedQtys []int
	}{
		{
			name:         "новый товар в пустую корзину",
			prepare:      func(s *Store) {},
			item:         latte16(),
			expectedIDs:  []int{101},
			expectedQtys: []int{1},
		},
		{
			name: "новый товар добавляется в конец",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			item:         spanish22(),
			expectedIDs:  []int{101, 202},
			expectedQtys: []int{1, 1},
		},
		{
			name: "повторное добавление увеличивает количество на месте",
			prepare: func(s *Store) {
				s.Add(latte16())
				s.Add(spanish22())
			},
			item:         latte16(),
			expectedIDs:  []int{101, 202},
			expectedQtys: []int{2, 1},
		},
		{
			name:    "переданное количество игнорируется",
			prepare: func(s *Store) {},
			item: func() LineItem {
				li := latte16()
				li.Quantity = 7
				return li
			}(),
			expectedIDs:  []int{101},
			expectedQtys: []int{1},
		},
		{
			name: "тот же id в другом размере это отдельная позиция",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			item: func() LineItem {
				li := latte16()
				li.Size = "22oz"
				return li
			}(),
			expectedIDs:  []int{101, 101},
			expectedQtys: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t)
			tt.prepare(s)

			cart := s.Add(tt.item)

			assert.Len(t, cart, len(tt.expectedIDs))
			for i := range cart {
				assert.Equal(t, tt.expectedIDs[i], cart[i].ID)
				assert.Equal(t, tt.expectedQtys[i], cart[i].Quantity)
			}
			assert.Equal(t, cart, s.Cart())
		})
	}
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		prepare     func(s *Store)
		id          int
		size        string
		dir         Direction
		expectedIDs []int
		expectedQty []int
	}{
		{
			name: "увеличение",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			id:          101,
			size:        "16oz",
			dir:         Increase,
			expectedIDs: []int{101},
			expectedQty: []int{2},
		},
		{
			name: "уменьшение",
			prepare: func(s *Store) {
				s.Add(latte16())
				s.Add(latte16())
			},
			id:          101,
			size:        "16oz",
			dir:         Decrease,
			expectedIDs: []int{101},
			expectedQty: []int{1},
		},
		{
			name: "уменьшение до нуля удаляет позицию и сохраняет порядок",
			prepare: func(s *Store) {
				s.Add(latte16())
				s.Add(spanish22())
				s.Add(americano16())
			},
			id:          202,
			size:        "22oz",
			dir:         Decrease,
			expectedIDs: []int{101, 501},
			expectedQty: []int{1, 1},
		},
		{
			name: "несуществующий ключ ничего не меняет",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			id:          999,
			size:        "16oz",
			dir:         Decrease,
			expectedIDs: []int{101},
			expectedQty: []int{1},
		},
		{
			name: "размер тоже часть ключа",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			id:          101,
			size:        "22oz",
			dir:         Decrease,
			expectedIDs: []int{101},
			expectedQty: []int{1},
		},
		{
			name: "неизвестное направление ничего не меняет",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			id:          101,
			size:        "16oz",
			dir:         Direction("sideways"),
			expectedIDs: []int{101},
			expectedQty: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t)
			tt.prepare(s)

			cart := s.UpdateQuantity(tt.id, tt.size, tt.dir)

			assert.Len(t, cart, len(tt.expectedIDs))
			for i := range cart {
				assert.Equal(t, tt.expectedIDs[i], cart[i].ID)
				assert.Equal(t, tt.expectedQty[i], cart[i].Quantity)
				assert.Greater(t, cart[i].Quantity, 0)
			}
		})
	}
}

func TestStore_Scenarios(t *testing.T) {
	t.Run("двойное добавление", func(t *testing.T) {
		s := setup(t)
		s.Add(latte16())
		cart := s.Add(latte16())

		assert.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.True(t, Total(cart).Equal(decimal.NewFromInt(200)))
	})

	t.Run("уменьшение первой позиции до нуля", func(t *testing.T) {
		s := setup(t)
		s.Add(latte16())
		s.Add(spanish22())
		cart := s.UpdateQuantity(101, "16oz", Decrease)

		assert.Len(t, cart, 1)
		assert.Equal(t, 202, cart[0].ID)
	})

	t.Run("уменьшение в пустой корзине", func(t *testing.T) {
		s := setup(t)
		cart := s.UpdateQuantity(999, "16oz", Decrease)

		assert.Empty(t, cart)
	})

	t.Run("очистка", func(t *testing.T) {
		s := setup(t)
		s.Add(latte16())
		s.Add(spanish22())
		s.Add(americano16())
		cart := s.Clear()

		assert.Empty(t, cart)
		assert.Empty(t, s.Cart())
		assert.True(t, Total(cart).IsZero())
	})
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	s := setup(t)
	before := s.Add(latte16())

	before[0].Quantity = 42
	s.Add(spanish22())

	current := s.Cart()
	assert.Equal(t, 1, current[0].Quantity)
	assert.Len(t, before, 1)
}

func TestStore_Subscribe(t *testing.T) {
	s := setup(t)

	var seen []int
	unsubscribe := s.Subscribe(func(c Cart) {
		seen = append(seen, len(c))
	})

	s.Add(latte16())
	s.Add(spanish22())
	s.UpdateQuantity(101, "16oz", Decrease)
	s.Clear()
	assert.Equal(t, []int{1, 2, 1, 0}, seen)

	unsubscribe()
	s.Add(latte16())
	assert.Equal(t, []int{1, 2, 1, 0}, seen)
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	s := setup(t)

	var last Cart
	s.Subscribe(func(Cart) {
		last = s.Cart()
	})

	s.Add(latte16())
	assert.Len(t, last, 1)
}

func TestStore_Subtract(t *testing.T) {
	tests := []struct {
		name        string
		prepare     func(s *Store)
		ordered     Cart
		expectedIDs []int
		expectedQty []int
	}{
		{
			name: "заказано все",
			prepare: func(s *Store) {
				s.Add(latte16())
				s.Add(latte16())
				s.Add(spanish22())
			},
			ordered:     Cart{withQty(latte16(), 2), withQty(spanish22(), 1)},
			expectedIDs: []int{},
			expectedQty: []int{},
		},
		{
			name: "добавленное после снимка остается",
			prepare: func(s *Store) {
				s.Add(latte16())
				s.Add(latte16())
				s.Add(spanish22())
				s.Add(americano16())
			},
			ordered:     Cart{withQty(latte16(), 1), withQty(spanish22(), 1)},
			expectedIDs: []int{101, 501},
			expectedQty: []int{1, 1},
		},
		{
			name: "позиция, которую успели убрать, не уходит в минус",
			prepare: func(s *Store) {
				s.Add(spanish22())
			},
			ordered:     Cart{withQty(latte16(), 3), withQty(spanish22(), 1)},
			expectedIDs: []int{},
			expectedQty: []int{},
		},
		{
			name: "пустой заказ ничего не меняет",
			prepare: func(s *Store) {
				s.Add(latte16())
			},
			ordered:     Cart{},
			expectedIDs: []int{101},
			expectedQty: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t)
			tt.prepare(s)

			cart := s.Subtract(tt.ordered)

			assert.Len(t, cart, len(tt.expectedIDs))
			for i := range cart {
				assert.Equal(t, tt.expectedIDs[i], cart[i].ID)
				assert.Equal(t, tt.expectedQty[i], cart[i].Quantity)
			}
			assert.Equal(t, cart, s.Cart())
		})
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	const workers = 50

	s := setup(t)

	var (
		obsMu sync.Mutex
		last  Cart
	)
	s.Subscribe(func(c Cart) {
		obsMu.Lock()
		last = c
		obsMu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(latte16())
		}()
	}
	wg.Wait()

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, workers, cart[0].Quantity)

	obsMu.Lock()
	defer obsMu.Unlock()
	assert.Equal(t, cart, last)
}

func TestStore_SlowObserverSeesLatestSnapshot(t *testing.T) {
	s := setup(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var (
		once  sync.Once
		obsMu sync.Mutex
		seen  []int
	)
	s.Subscribe(func(c Cart) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-release
		}
		obsMu.Lock()
		seen = append(seen, len(c))
		obsMu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Add(latte16())
	}()
	<-entered

	go func() {
		defer wg.Done()
		s.Add(spanish22())
	}()
	assert.Eventually(t, func() bool { return len(s.Cart()) == 2 }, time.Second, time.Millisecond)

	close(release)
	wg.Wait()

	obsMu.Lock()
	defer obsMu.Unlock()
	assert.Equal(t, []int{1, 2}, seen)
	assert.Len(t, s.Cart(), seen[len(seen)-1])
}

func withQty(item LineItem, qty int) LineItem {
	item.Quantity = qty
	return item
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		cart     Cart
		expected string
	}{
		{
			name:     "пустая корзина",
			cart:     Cart{},
			expected: "0",
		},
		{
			name: "несколько позиций",
			cart: Cart{
				{ID: 101, UnitPrice: decimal.NewFromInt(100), Size: "16oz", Quantity: 2},
				{ID: 202, UnitPrice: decimal.NewFromInt(140), Size: "22oz", Quantity: 1},
			},
			expected: "340",
		},
		{
			name: "дробные цены",
			cart: Cart{
				{ID: 1, UnitPrice: decimal.RequireFromString("99.95"), Size: "16oz", Quantity: 3},
			},
			expected: "299.85",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Total(tt.cart).Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("increase")
	assert.NoError(t, err)
	assert.Equal(t, Increase, d)

	d, err = ParseDirection("decrease")
	assert.NoError(t, err)
	assert.Equal(t, Decrease, d)

	_, err = ParseDirection("up")
	assert.True(t, errors.Is(err, myErr.ErrInvalidDirection))
}

func TestStoreFromContext(t *testing.T) {
	_, err := StoreFromContext(context.Background())
	assert.ErrorIs(t, err, myErr.ErrNoCartProvider)

	s := setup(t)
	got, err := StoreFromContext(ContextWithStore(context.Background(), s))
	assert.NoError(t, err)
	assert.Same(t, s, got)
}
