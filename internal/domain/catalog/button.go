package catalog

// Etiquetas del botón "agregar al carrito" de la tarjeta de producto.
const (
	ButtonPending   = "Adding..."
	ButtonAdded     = "Added"
	ButtonInCart    = "In Cart"
	ButtonAddToCart = "Add to Cart"
)

// ButtonLabel resuelve la etiqueta del botón en cascada de prioridad:
// pendiente > recién agregado > ya en carrito > default. Al expirar la ventana
// "Added", la etiqueta cae a "In Cart" o "Add to Cart" según la membresía.
func ButtonLabel(pending, justAdded, inCart bool) string {
	switch {
	case pending:
		return ButtonPending
	case justAdded:
		return ButtonAdded
	case inCart:
		return ButtonInCart
	default:
		return ButtonAddToCart
	}
}
