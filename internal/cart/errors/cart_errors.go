package carterrors

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrCartNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart not found",
		http.StatusNotFound,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrMissingProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Product id is required",
		http.StatusBadRequest,
	)

	ErrMissingProductName = apperror.New(
		apperror.CodeInvalidInput,
		"Product name is required",
		http.StatusBadRequest,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Item quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Item price cannot be negative",
		http.StatusBadRequest,
	)

	ErrDuplicateItem = apperror.New(
		apperror.CodeInvalidInput,
		"Duplicate product in item list",
		http.StatusBadRequest,
	)

	ErrNotCartOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only modify your own cart",
		http.StatusForbidden,
	)
)
