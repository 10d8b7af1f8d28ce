package middleware

import (
	"net/http"

	"cafenate-cart/internal/shopping_cart"
)

// CartProvider кладет хранилище корзины в контекст каждого запроса
func CartProvider(store shopping_cart.CartStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shopping_cart.ContextWithStore(r.Context(), store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
