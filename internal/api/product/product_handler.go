package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Elyse-t/ecormmerce-api/internal/store"
)

type ProductRequest struct {
	ProductName string  `json:"productName" example:"Widget"`
	Description string  `json:"description" example:"A useful widget"`
	Quantity    int64   `json:"quantity" example:"5"`
	Price       float64 `json:"price" example:"9.99"`
}

type QuantityRequest struct {
	Quantity int64 `json:"quantity" example:"3"`
}

type QuantityResponse struct {
	Quantity int64 `json:"quantity" example:"3"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Product deleted successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Product not found"`
}

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// Create godoc
//
//	@Summary		Create a product
//	@Description	Insert a new product and return it with its assigned id
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductRequest	true	"Product data"
//	@Success		201		{object}	store.Product	"Created product"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	p := store.Product{
		Name:        req.ProductName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}
	if err := h.store.CreateProduct(r.Context(), &p); err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(w, http.StatusCreated, p)
}

// List godoc
//
//	@Summary		List all products
//	@Description	Return every product ordered by ascending id
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		store.Product	"Products"
//	@Failure		500	{object}	ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(w, http.StatusOK, products)
}

// Get godoc
//
//	@Summary		Get a product
//	@Description	Return a single product by id
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int				true	"Product id"
//	@Success		200	{object}	store.Product	"Product"
//	@Failure		404	{object}	ErrorResponse	"Product not found"
//	@Failure		500	{object}	ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		sendStoreError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, p)
}

// Update godoc
//
//	@Summary		Replace a product
//	@Description	Full-field update of a product by id
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Product id"
//	@Param			product	body		ProductRequest	true	"Product data"
//	@Success		200		{object}	store.Product	"Updated product"
//	@Failure		404		{object}	ErrorResponse	"Product not found"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	p, err := h.store.UpdateProduct(r.Context(), id, store.Product{
		Name:        req.ProductName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		sendStoreError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, p)
}

// UpdateQuantity godoc
//
//	@Summary		Update a product's quantity
//	@Description	Quantity-only partial update of a product by id
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int					true	"Product id"
//	@Param			quantity	body		QuantityRequest		true	"New quantity"
//	@Success		200			{object}	QuantityResponse	"Updated quantity"
//	@Failure		404			{object}	ErrorResponse		"Product not found"
//	@Failure		500			{object}	ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products/{id} [patch]
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	p, err := h.store.UpdateProductQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		sendStoreError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, QuantityResponse{Quantity: p.Quantity})
}

// Delete godoc
//
//	@Summary		Delete a product
//	@Description	Remove a product by id
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int				true	"Product id"
//	@Success		200	{object}	MessageResponse	"Product deleted"
//	@Failure		404	{object}	ErrorResponse	"Product not found"
//	@Failure		500	{object}	ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/products/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		sendStoreError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// productID parses the {id} path segment. A non-numeric id cannot match
// any row, so it reports not-found rather than a validation error.
func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		sendErrorResponse(w, http.StatusNotFound, "Product not found")
		return 0, false
	}
	return id, true
}

func sendStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	sendErrorResponse(w, http.StatusInternalServerError, err.Error())
}

func sendJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	sendJSONResponse(w, statusCode, ErrorResponse{Error: message})
}
