package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

// ProductHandler handles HTTP requests for products and their variants.
type ProductHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Reads are
// public, with optionalAuth supplying the staff view; mutations require an
// authenticated staff caller.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, optionalAuth, authRequired, staffOnly fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", optionalAuth, h.HandleGetProducts)
	productRoutes.Post("/", authRequired, staffOnly, h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", authRequired, staffOnly, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, staffOnly, h.HandleDeleteProduct)

	productRoutes.Get("/:id/variants", h.HandleGetVariants)
	productRoutes.Post("/:id/variants", authRequired, staffOnly, h.HandleCreateVariant)

	variantRoutes := router.Group("/variants")
	variantRoutes.Get("/:id", h.HandleGetVariant)
	variantRoutes.Put("/:id", authRequired, staffOnly, h.HandleUpdateVariant)
	variantRoutes.Delete("/:id", authRequired, staffOnly, h.HandleDeleteVariant)
}

// HandleGetProducts returns the catalog. Staff also see inactive products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	_, isStaff := currentUser(c)

	products, err := h.catalogService.GetAllProducts(isStaff)
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return respondServiceError(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.catalogService.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product %s: %v", id, err)
		return respondServiceError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondServiceError(c, err, "Could not create product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = id

	if err := h.validate.Struct(product); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return respondServiceError(c, err, "Could not update product")
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.catalogService.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return respondServiceError(c, err, "Could not delete product")
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleGetVariants returns the variants of a product.
func (h *ProductHandler) HandleGetVariants(c *fiber.Ctx) error {
	productID := c.Params("id")

	variants, err := h.catalogService.GetVariants(productID)
	if err != nil {
		log.Printf("Error getting variants of product %s: %v", productID, err)
		return respondServiceError(c, err, "Could not retrieve variants")
	}
	return c.JSON(variants)
}

// HandleGetVariant returns a single variant.
func (h *ProductHandler) HandleGetVariant(c *fiber.Ctx) error {
	id := c.Params("id")

	variant, err := h.catalogService.GetVariantByID(id)
	if err != nil {
		log.Printf("Error getting variant %s: %v", id, err)
		return respondServiceError(c, err, "Could not retrieve variant")
	}
	return c.JSON(variant)
}

// HandleCreateVariant creates a variant under a product.
func (h *ProductHandler) HandleCreateVariant(c *fiber.Ctx) error {
	productID := c.Params("id")

	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		log.Printf("Error parsing create variant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	variant.ProductID = productID

	if err := h.validate.Struct(variant); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateVariant(&variant); err != nil {
		log.Printf("Error creating variant for product %s: %v", productID, err)
		return respondServiceError(c, err, "Could not create variant")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Variant created successfully",
		"variant": variant,
	})
}

// HandleUpdateVariant updates an existing variant.
func (h *ProductHandler) HandleUpdateVariant(c *fiber.Ctx) error {
	id := c.Params("id")

	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		log.Printf("Error parsing update variant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	variant.ID = id

	if err := h.validate.Struct(variant); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.UpdateVariant(&variant); err != nil {
		log.Printf("Error updating variant %s: %v", id, err)
		return respondServiceError(c, err, "Could not update variant")
	}

	return c.JSON(fiber.Map{
		"message": "Variant updated successfully",
		"variant": variant,
	})
}

// HandleDeleteVariant deletes a variant.
func (h *ProductHandler) HandleDeleteVariant(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.catalogService.DeleteVariant(id); err != nil {
		log.Printf("Error deleting variant %s: %v", id, err)
		return respondServiceError(c, err, "Could not delete variant")
	}

	return c.JSON(fiber.Map{
		"message": "Variant deleted successfully",
	})
}
