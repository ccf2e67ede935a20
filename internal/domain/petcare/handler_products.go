package petcare

import (
	"net/http"
)

// listProductsHandler godoc
// @Summary Listar productos
// @Description Cada producto trae pet_name resuelto en la lectura ("Unknown Pet" si no hay mascota).
// @Tags products
// @Produce json
// @Success 200 {array} Product
// @Router /products [get]
func listProductsHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListProducts(r.Context())
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createProductHandler godoc
// @Summary Crear producto
// @Description type es uno de Medicamento, Vacina, Higiene, Alimento, Outro. pet_id, si viene, tiene que existir.
// @Tags products
// @Accept json
// @Produce json
// @Param payload body Product true "Datos del producto"
// @Success 201 {object} Product
// @Failure 400 {string} string "invalid json / tipo inválido / pet inexistente"
// @Router /products [post]
func createProductHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Product
		if !decodeBody(w, r, &p) {
			return
		}
		p.ID = NewID(KindProduct)

		saved, err := rt.store.SaveProduct(r.Context(), p)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} Product
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := rt.store.GetProduct(r.Context(), pathID(r, "productID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		if p == nil {
			notFound(w, "product")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary Crear o reemplazar producto
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "ID del producto"
// @Param payload body Product true "Datos del producto"
// @Success 200 {object} Product
// @Failure 400 {string} string "invalid json / tipo inválido / pet inexistente"
// @Router /products/{productID} [put]
func saveProductHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Product
		if !decodeBody(w, r, &p) {
			return
		}
		p.ID = pathID(r, "productID")

		saved, err := rt.store.SaveProduct(r.Context(), p)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// @Summary Borrar producto
// @Tags products
// @Param productID path string true "ID del producto"
// @Success 204
// @Router /products/{productID} [delete]
func deleteProductHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rt.store.DeleteProduct(r.Context(), pathID(r, "productID")); err != nil {
			rt.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Listar productos de una mascota
// @Tags products
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Product
// @Router /pets/{petID}/products [get]
func listProductsByPetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListProductsByPet(r.Context(), pathID(r, "petID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}
