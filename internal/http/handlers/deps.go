package handlers

import (
	"gpstore/internal/store"
)

type Deps struct {
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	AuthHandler    *AuthHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler
}

func NewDeps(st *store.Store) *Deps {
	return &Deps{
		ProductHandler: &ProductHandler{Store: st},
		CartHandler:    &CartHandler{Store: st},
		AuthHandler:    &AuthHandler{Store: st},
		OrderHandler:   &OrderHandler{Store: st},
		AdminHandler:   &AdminHandler{Store: st},
	}
}
