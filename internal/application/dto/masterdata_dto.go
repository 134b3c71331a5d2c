package dto

// CreateNamedEntityRequest entrada para crear un proveedor o un área.
type CreateNamedEntityRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// NamedEntityResponse salida de un registro de datos maestros.
type NamedEntityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
