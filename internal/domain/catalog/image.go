package catalog

import "fmt"

// FallbackImageURL construye la imagen de relleno determinista keyed por id de
// producto. El mismo producto siempre recibe la misma imagen; el cliente la usa
// también cuando la imagen real falla al cargar.
func FallbackImageURL(base, productID string) string {
	return fmt.Sprintf("%s/seed/%s/600/400", base, productID)
}

// ImageURL devuelve la imagen a mostrar: la del producto si está definida,
// si no la de relleno.
func ImageURL(base, productID, imageURL string) string {
	if imageURL != "" {
		return imageURL
	}
	return FallbackImageURL(base, productID)
}
