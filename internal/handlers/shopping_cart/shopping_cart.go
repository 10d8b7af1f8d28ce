package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"cafenate-cart/internal/catalog"
	"cafenate-cart/internal/checkout"
	"cafenate-cart/internal/shopping_cart"
	myErr "cafenate-cart/internal/types/errors"
	"cafenate-cart/internal/types/order"
)

// ShoppingCartHandler ручки для корзины
type ShoppingCartHandler struct {
	Logger          *zap.SugaredLogger
	Catalog         *catalog.Catalog
	CheckoutService *checkout.Service
	Currency        string
	CheckoutTimeout time.Duration
}

// NewShoppingCartHandler конструктор
func NewShoppingCartHandler(
	log *zap.SugaredLogger,
	c *catalog.Catalog,
	cs *checkout.Service,
	currency string,
	checkoutTimeout time.Duration,
) *ShoppingCartHandler {
	return &ShoppingCartHandler{
		Logger:          log,
		Catalog:         c,
		CheckoutService: cs,
		Currency:        currency,
		CheckoutTimeout: checkoutTimeout,
	}
}

type addItemRequest struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
}

type updateQuantityRequest struct {
	Size      string `json:"size"`
	Direction string `json:"direction"`
}

type itemResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Items       []itemResponse `json:"items"`
	Total       string         `json:"total"`
	Currency    string         `json:"currency"`
	CanCheckout bool           `json:"can_checkout"`
}

type checkoutResponse struct {
	Receipt *order.Receipt `json:"receipt"`
	// Next экран, на который клиент возвращается после заказа
	Next string `json:"next"`
}

// GetCatalog - GET /api/catalog
func (h *ShoppingCartHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Catalog.Products)
}

// GetCart - GET /api/cart
func (h *ShoppingCartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, h.cartView(store.Cart()))
}

// AddToShoppingCart - POST /api/cart/items
func (h *ShoppingCartHandler) AddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	item, err := h.Catalog.Variant(req.ProductID, req.Size)
	if err != nil {
		if errors.Is(err, myErr.ErrUnknownProduct) || errors.Is(err, myErr.ErrUnknownSize) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	cart := store.Add(item)
	h.Logger.Infof("added %s to cart", item.Name)
	h.writeJSON(w, http.StatusCreated, h.cartView(cart))
}

// UpdateQuantity - PATCH /api/cart/items/{id}
func (h *ShoppingCartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	dir, err := shopping_cart.ParseDirection(req.Direction)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	cart := store.UpdateQuantity(id, req.Size, dir)
	h.writeJSON(w, http.StatusOK, h.cartView(cart))
}

// ClearCart - DELETE /api/cart
func (h *ShoppingCartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	cart := store.Clear()
	h.Logger.Info("cart cleared by user")
	h.writeJSON(w, http.StatusOK, h.cartView(cart))
}

// Checkout - POST /api/checkout
// После успешного заказа корзина пуста, клиент возвращается на главный экран
func (h *ShoppingCartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if h.CheckoutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.CheckoutTimeout)
		defer cancel()
	}

	receipt, err := h.CheckoutService.Confirm(ctx, store)
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrEmptyCart):
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
		case errors.Is(err, myErr.ErrPublishOrder):
			myErr.SendErrorTo(w, myErr.ErrPublishOrder, http.StatusServiceUnavailable, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, checkoutResponse{Receipt: receipt, Next: "home"})
}

// store достает корзину из контекста запроса. Отсутствие провайдера - ошибка сборки роутера
func (h *ShoppingCartHandler) store(w http.ResponseWriter, r *http.Request) (shopping_cart.CartStore, bool) {
	store, err := shopping_cart.StoreFromContext(r.Context())
	if err != nil {
		h.Logger.Errorw("cart handler mounted without cart provider", "path", r.URL.Path, "err", err)
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return nil, false
	}

	return store, true
}

func (h *ShoppingCartHandler) cartView(cart shopping_cart.Cart) cartResponse {
	items := make([]itemResponse, 0, len(cart))
	for _, item := range cart {
		items = append(items, itemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}

	return cartResponse{
		Items:       items,
		Total:       shopping_cart.Total(cart).StringFixed(2),
		Currency:    h.Currency,
		CanCheckout: len(cart) > 0,
	}
}

func (h *ShoppingCartHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
