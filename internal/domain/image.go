package domain

import "time"

// Image is a picture attached to a recipe. Attachment holds the object key in
// the image bucket, never a public URL.
type Image struct {
	ID          string    `json:"id"`
	RecipeID    *string   `json:"recipeId,omitempty"`
	DisplayName string    `json:"displayName"`
	Name        string    `json:"name"`
	Attachment  string    `json:"attachment"`
	ImageType   ImageType `json:"imageType"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ImageType string

const (
	ImageTypeStock      ImageType = "STOCK"
	ImageTypePrivate    ImageType = "PRIVATE"
	ImageTypeStepByStep ImageType = "STEP_BY_STEP"
)

func (t ImageType) Valid() bool {
	return t == ImageTypeStock || t == ImageTypePrivate || t == ImageTypeStepByStep
}

// ImageUpload is the payload of POST /api/recipes/{id}/images.
type ImageUpload struct {
	DisplayName string    `json:"displayName" example:"Finished cake"`
	Name        string    `json:"name" example:"cake.jpg"`
	ImageType   ImageType `json:"imageType" example:"STOCK"`
}

// ImageUploadResponse returns the stored image and where to PUT its bytes.
type ImageUploadResponse struct {
	Image     Image  `json:"image"`
	UploadURL string `json:"uploadUrl"`
}

// ImageView is an image with a short-lived download link.
type ImageView struct {
	Image       Image  `json:"image"`
	DownloadURL string `json:"downloadUrl"`
}
