package storefront

import "net/url"

// Navigator produce los destinos de navegación de la pantalla. La vitrina no
// navega por sí misma: emite estos links en el view-model y el cliente decide
// cuándo seguirlos.
type Navigator interface {
	ProfileURL() string
	AdminURL() string
	CartURL() string
	CheckoutURL(productID string) string
	DetailURL(productID string) string
}

// PathNavigator navegación por rutas relativas de la aplicación web.
type PathNavigator struct{}

func (PathNavigator) ProfileURL() string { return "/profile" }
func (PathNavigator) AdminURL() string   { return "/admin" }
func (PathNavigator) CartURL() string    { return "/cart" }

func (PathNavigator) CheckoutURL(productID string) string {
	return "/checkout?product=" + url.QueryEscape(productID)
}

func (PathNavigator) DetailURL(productID string) string {
	return "/products/" + url.PathEscape(productID)
}
