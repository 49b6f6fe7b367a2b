package request

type CategoryRequest struct {
	Name        string `json:"category_name" validate:"required,min=2,max=100"`
	Description string `json:"category_description" validate:"required"`
	Image       string `json:"category_img"`
}

type ProductRequest struct {
	CategoryID  int64  `json:"category_id" validate:"required,min=1"`
	Name        string `json:"product_name" validate:"required,min=2,max=100"`
	Description string `json:"product_description" validate:"required"`
	Image       string `json:"product_img"`
}
