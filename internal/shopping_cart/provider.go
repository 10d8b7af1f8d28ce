package shopping_cart

import (
	"context"

	myErr "cafenate-cart/internal/types/errors"
)

type storeKey struct{}

// ContextWithStore кладет хранилище корзины в контекст
func ContextWithStore(ctx context.Context, store CartStore) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// StoreFromContext достает хранилище из контекста.
// Вызов вне провайдера это ошибка разработчика, а не пользователя
func StoreFromContext(ctx context.Context) (CartStore, error) {
	store, ok := ctx.Value(storeKey{}).(CartStore)
	if !ok || store == nil {
		return nil, myErr.ErrNoCartProvider
	}

	return store, nil
}
