package controller

import (
	"net/http"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *service.CatalogService
	Images  service.ImageHost
}

func NewCatalogController(s *service.CatalogService, images service.ImageHost) *CatalogController {
	return &CatalogController{Service: s, Images: images}
}

// GET /products — público
func (ctl *CatalogController) List(c *gin.Context) {
	products, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:productId — público
func (ctl *CatalogController) Get(c *gin.Context) {
	product, err := ctl.Service.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /admin/products
func (ctl *CatalogController) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /admin/products/:productId
func (ctl *CatalogController) Update(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ctl.Service.Update(c.Request.Context(), c.Param("productId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /admin/products/:productId
func (ctl *CatalogController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// POST /admin/images — sube el archivo al hosting y devuelve la URL.
// El admin usa la URL devuelta en el alta/edición de productos y home.
func (ctl *CatalogController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falta el archivo 'image'"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := ctl.Images.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
