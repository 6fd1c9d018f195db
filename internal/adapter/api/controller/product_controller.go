package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/product"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepository product.Repository
	tenantRepository  tenant.Repository
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepository product.Repository, tenantRepository tenant.Repository) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		tenantRepository:  tenantRepository,
	}
}

// Create cria um novo produto
// @Summary Cria um novo produto
// @Description Cadastra um item no catálogo do tenant
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Checar o limite de produtos do plano
	t, err := c.tenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	count, err := c.productRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar produtos", err.Error()))
		return
	}

	if count >= t.Limits.MaxProducts {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Limite do plano atingido", "O plano atual não permite cadastrar mais produtos"))
		return
	}

	p, err := product.NewProduct(tenantID, request.Name, request.Description, request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Create(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get busca um produto pelo ID
// @Summary Busca um produto
// @Description Retorna os dados de um produto do tenant
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	p, err := c.productRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos do tenant
// @Summary Lista os produtos
// @Description Retorna a lista paginada de produtos do tenant, com busca por nome
// @Tags products
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param name query string false "Filtro por nome"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	var (
		products []*product.Product
		err      error
	)

	if name := ctx.Query("name"); name != "" {
		products, err = c.productRepository.FindByName(ctx, tenantID, name, pagination.PageSize, pagination.Offset())
	} else {
		products, err = c.productRepository.List(ctx, tenantID, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um produto
// @Summary Atualiza um produto
// @Description Atualiza os dados de um produto do tenant
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	if err := p.Update(request.Name, request.Description, request.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Update(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Remove um produto
// @Description Remove um produto do catálogo do tenant
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if err := c.productRepository.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto removido com sucesso", nil))
}
