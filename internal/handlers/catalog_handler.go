package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

// CatalogHandler handles HTTP requests for brands and categories.
type CatalogHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the brand and category routes with the Fiber app.
// Reads are public; mutations require an authenticated staff caller.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router, authRequired, staffOnly fiber.Handler) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Post("/", authRequired, staffOnly, h.HandleCreateBrand)
	brandRoutes.Get("/:id", h.HandleGetBrand)
	brandRoutes.Put("/:id", authRequired, staffOnly, h.HandleUpdateBrand)
	brandRoutes.Delete("/:id", authRequired, staffOnly, h.HandleDeleteBrand)

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", authRequired, staffOnly, h.HandleCreateCategory)
	categoryRoutes.Get("/:id", h.HandleGetCategory)
	categoryRoutes.Put("/:id", authRequired, staffOnly, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", authRequired, staffOnly, h.HandleDeleteCategory)
}

// HandleGetBrands returns all brands.
func (h *CatalogHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.catalogService.GetAllBrands()
	if err != nil {
		log.Printf("Error getting brands: %v", err)
		return respondServiceError(c, err, "Could not retrieve brands")
	}
	return c.JSON(brands)
}

// HandleGetBrand returns a single brand.
func (h *CatalogHandler) HandleGetBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	brand, err := h.catalogService.GetBrandByID(id)
	if err != nil {
		log.Printf("Error getting brand %s: %v", id, err)
		return respondServiceError(c, err, "Could not retrieve brand")
	}
	return c.JSON(brand)
}

// HandleCreateBrand creates a new brand.
func (h *CatalogHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		log.Printf("Error parsing create brand request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(brand); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateBrand(&brand); err != nil {
		log.Printf("Error creating brand: %v", err)
		return respondServiceError(c, err, "Could not create brand")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Brand created successfully",
		"brand":   brand,
	})
}

// HandleUpdateBrand updates an existing brand.
func (h *CatalogHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		log.Printf("Error parsing update brand request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	brand.ID = id

	if err := h.validate.Struct(brand); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.UpdateBrand(&brand); err != nil {
		log.Printf("Error updating brand %s: %v", id, err)
		return respondServiceError(c, err, "Could not update brand")
	}

	return c.JSON(fiber.Map{
		"message": "Brand updated successfully",
		"brand":   brand,
	})
}

// HandleDeleteBrand deletes a brand.
func (h *CatalogHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.catalogService.DeleteBrand(id); err != nil {
		log.Printf("Error deleting brand %s: %v", id, err)
		return respondServiceError(c, err, "Could not delete brand")
	}

	return c.JSON(fiber.Map{
		"message": "Brand deleted successfully",
	})
}

// HandleGetCategories returns all categories.
func (h *CatalogHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.GetAllCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return respondServiceError(c, err, "Could not retrieve categories")
	}
	return c.JSON(categories)
}

// HandleGetCategory returns a single category.
func (h *CatalogHandler) HandleGetCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	category, err := h.catalogService.GetCategoryByID(id)
	if err != nil {
		log.Printf("Error getting category %s: %v", id, err)
		return respondServiceError(c, err, "Could not retrieve category")
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CatalogHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondServiceError(c, err, "Could not create category")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// HandleUpdateCategory updates an existing category.
func (h *CatalogHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing update category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = id

	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.UpdateCategory(&category); err != nil {
		log.Printf("Error updating category %s: %v", id, err)
		return respondServiceError(c, err, "Could not update category")
	}

	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// HandleDeleteCategory deletes a category.
func (h *CatalogHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.catalogService.DeleteCategory(id); err != nil {
		log.Printf("Error deleting category %s: %v", id, err)
		return respondServiceError(c, err, "Could not delete category")
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
