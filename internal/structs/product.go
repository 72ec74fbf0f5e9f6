package structs

type FarmerRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	ImageURL    string    `json:"imageURL"`
	Farmer      FarmerRef `json:"farmer"`
}

type CreateProduct struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int64   `json:"stock"`
	ImageURL    string  `json:"imageURL"`
}

type PatchProduct struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int64   `json:"stock,omitempty"`
	ImageURL    *string  `json:"imageURL,omitempty"`
}

type UploadedImage struct {
	URL string `json:"url"`
}
