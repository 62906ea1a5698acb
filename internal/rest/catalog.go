package rest

import (
	"net/http"
	"net/url"

	"cropRecommendation/business/preset"
	"cropRecommendation/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CropCatalog interface {
	Lookup(name string) (domain.CropProfile, bool)
	Profiles() []domain.CropProfile
	AttributeKeys() []domain.Attribute
}

type CatalogHandler struct {
	catalog CropCatalog
}

func NewCatalogHandler(catalog CropCatalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

type AttributeInfo struct {
	Name domain.Attribute `json:"name"`
	Kind string           `json:"kind"`
}

func (h *CatalogHandler) ListCrops(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.Profiles()))
}

func (h *CatalogHandler) GetCrop(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid crop name"})
	}

	profile, ok := h.catalog.Lookup(name)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "crop not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}

func (h *CatalogHandler) Attributes(c echo.Context) error {
	keys := h.catalog.AttributeKeys()
	out := make([]AttributeInfo, 0, len(keys))
	for _, k := range keys {
		kind := "categorical"
		if k.IsNumeric() {
			kind = "numeric"
		}
		out = append(out, AttributeInfo{Name: k, Kind: kind})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(out))
}

func (h *CatalogHandler) Presets(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(preset.List()))
}
