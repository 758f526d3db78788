package repo

import "github.com/Mazin-Fouad/ecommerce-api/internal/domain"

// The Unavailable* gateways are injected when no database connection could
// be opened at boot. Every call fails with domain.ErrStorageUnavailable,
// which sends read paths to the fallback catalog and write paths to a 500.

type UnavailableUsers struct{}

var _ domain.UserStore = UnavailableUsers{}

func (UnavailableUsers) Create(*domain.User) error { return domain.ErrStorageUnavailable }
func (UnavailableUsers) FindByID(string) (*domain.User, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableUsers) FindByEmail(string) (*domain.User, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableUsers) Update(*domain.User) error { return domain.ErrStorageUnavailable }
func (UnavailableUsers) List(int, int) ([]domain.User, int64, error) {
	return nil, 0, domain.ErrStorageUnavailable
}

type UnavailableProducts struct{}

var _ domain.ProductStore = UnavailableProducts{}

func (UnavailableProducts) List(domain.ProductFilter) ([]domain.Product, int64, error) {
	return nil, 0, domain.ErrStorageUnavailable
}
func (UnavailableProducts) FindByID(string) (*domain.Product, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableProducts) Create(*domain.Product) error { return domain.ErrStorageUnavailable }
func (UnavailableProducts) Update(*domain.Product) error { return domain.ErrStorageUnavailable }
func (UnavailableProducts) Delete(string) (bool, error) {
	return false, domain.ErrStorageUnavailable
}

type UnavailableCart struct{}

var _ domain.CartStore = UnavailableCart{}

func (UnavailableCart) ListByUser(string) ([]domain.CartItem, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableCart) FindByID(string, string) (*domain.CartItem, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableCart) FindByUserAndProduct(string, string) (*domain.CartItem, error) {
	return nil, domain.ErrStorageUnavailable
}
func (UnavailableCart) Create(*domain.CartItem) error { return domain.ErrStorageUnavailable }
func (UnavailableCart) Update(*domain.CartItem) error { return domain.ErrStorageUnavailable }
func (UnavailableCart) Delete(string, string) (bool, error) {
	return false, domain.ErrStorageUnavailable
}
func (UnavailableCart) ClearByUser(string) error { return domain.ErrStorageUnavailable }
