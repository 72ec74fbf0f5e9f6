package structs

type Review struct {
	ID       string      `json:"_id"`
	Product  string      `json:"product"`
	Customer CustomerRef `json:"customer"`
	Rating   int         `json:"rating"`
	Comment  string      `json:"comment"`
}

type CreateReview struct {
	Product string `json:"product" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ProductReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
}
