package shopping_cart

import (
	"sync"

	"go.uber.org/zap"
)

type observer struct {
	id int
	fn func(Cart)
}

// Store корзина в памяти. Каждая операция заменяет срез целиком,
// выданные наружу снимки больше не меняются
type Store struct {
	mu        sync.Mutex
	cart      Cart
	version   uint64
	observers []observer
	nextObsID int

	// notifyMu упорядочивает доставку, delivered - последняя доставленная версия
	notifyMu  sync.Mutex
	delivered uint64

	Logger *zap.SugaredLogger
}

func NewStore(logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Store{
		cart:   Cart{},
		Logger: logger,
	}
}

// Cart возвращает копию текущего состояния
func (s *Store) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.cart)
}

// Add добавляет пользователю в корзину одну единицу товара
func (s *Store) Add(item LineItem) Cart {
	s.mu.Lock()
	next := make(Cart, 0, len(s.cart)+1)
	found := false
	for _, existing := range s.cart {
		if existing.Key() == item.Key() {
			existing.Quantity++
			found = true
		}
		next = append(next, existing)
	}
	if !found {
		item.Quantity = 1
		next = append(next, item)
	}

	snapshot := s.swap(next)
	s.Logger.Debugw("item added to cart", "id", item.ID, "size", item.Size, "merged", found)

	return snapshot
}

// UpdateQuantity меняет количество на единицу. Все, что ушло в ноль, удаляется
func (s *Store) UpdateQuantity(id int, size string, dir Direction) Cart {
	key := Key{ID: id, Size: size}

	s.mu.Lock()
	next := make(Cart, 0, len(s.cart))
	for _, existing := range s.cart {
		if existing.Key() == key {
			switch dir {
			case Increase:
				existing.Quantity++
			case Decrease:
				existing.Quantity--
			}
		}
		if existing.Quantity > 0 {
			next = append(next, existing)
		}
	}

	snapshot := s.swap(next)
	s.Logger.Debugw("cart quantity updated", "id", id, "size", size, "direction", dir)

	return snapshot
}

// Clear заменяет корзину пустой
func (s *Store) Clear() Cart {
	s.mu.Lock()
	snapshot := s.swap(Cart{})
	s.Logger.Debug("cart cleared")

	return snapshot
}

// Subtract убирает из корзины то, что уже ушло в заказ: количество каждой
// позиции уменьшается на заказанное, позиции с нулем удаляются.
// Добавленное после снимка заказа остается в корзине
func (s *Store) Subtract(ordered Cart) Cart {
	taken := make(map[Key]int, len(ordered))
	for _, item := range ordered {
		taken[item.Key()] += item.Quantity
	}

	s.mu.Lock()
	next := make(Cart, 0, len(s.cart))
	for _, existing := range s.cart {
		existing.Quantity -= taken[existing.Key()]
		if existing.Quantity > 0 {
			next = append(next, existing)
		}
	}

	snapshot := s.swap(next)
	s.Logger.Debugw("ordered items removed from cart", "ordered", len(ordered), "left", len(snapshot))

	return snapshot
}

// Subscribe регистрирует наблюдателя. Он вызывается после каждой операции
// с новым снимком, в порядке подписки
func (s *Store) Subscribe(fn func(Cart)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		kept := make([]observer, 0, len(s.observers))
		for _, o := range s.observers {
			if o.id != id {
				kept = append(kept, o)
			}
		}
		s.observers = kept
	}
}

// swap вызывается под s.mu и отпускает его перед уведомлением наблюдателей.
// Наблюдатели могут читать хранилище, поэтому s.mu при доставке не держится.
// Версия, которая старше уже доставленной, наблюдателям не отдается
func (s *Store) swap(next Cart) Cart {
	s.cart = next
	s.version++
	version := s.version
	observers := s.observers
	s.mu.Unlock()

	s.notifyMu.Lock()
	if version > s.delivered {
		s.delivered = version
		for _, o := range observers {
			o.fn(clone(next))
		}
	}
	s.notifyMu.Unlock()

	return clone(next)
}

func clone(c Cart) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
