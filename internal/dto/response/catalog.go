package response

import (
	"textile-store/internal/data/entity"
)

type CategoryResponse struct {
	ID          int64  `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	Image       string `json:"category_img"`
}

type ProductResponse struct {
	ID          int64  `json:"product_id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"product_name"`
	Description string `json:"product_description"`
	Image       string `json:"product_img"`
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
	}
}
