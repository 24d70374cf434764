package blueprint

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"blueprint-registry/internal/pricecodec"
)

// Constants for validation
const (
	MaxTitleLength     = 200
	MaxArchitectLength = 120
)

// CreateBlueprintRequest - POST /v1/blueprints
// Price arrives as a decimal and is encoded to the codec token before it
// ever touches the store.
type CreateBlueprintRequest struct {
	Title           string          `json:"title" binding:"required"`
	Architect       string          `json:"architect" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	PreviewImageURL string          `json:"preview_image_url,omitempty"`
}

func (r CreateBlueprintRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Architect,
			validation.Required.Error("architect is required"),
			validation.Length(1, MaxArchitectLength),
		),
		validation.Field(&r.Price,
			validation.By(validateNonNegativePrice),
		),
		validation.Field(&r.PreviewImageURL,
			validation.When(r.PreviewImageURL != "", is.URL.Error("preview image must be a URL")),
		),
	)
}

func validateNonNegativePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// BlueprintResponse - one listing as the API renders it. Price carries the
// decoded token value; it is null when the stored token does not decode
// (soft failure, the rest of the record still renders).
type BlueprintResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Architect       string           `json:"architect"`
	Owner           string           `json:"owner"`
	Status          Status           `json:"status"`
	EncodedPrice    string           `json:"encoded_price"`
	Price           *decimal.Decimal `json:"price"`
	PreviewImageURL string           `json:"preview_image_url,omitempty"`
	CreatedAt       int64            `json:"created_at"`
}

// ListFilter - query parameters for GET /v1/blueprints
type ListFilter struct {
	Search string `form:"search"` // case-insensitive match on title/architect
	Status string `form:"status"` // exact status, empty = all
}

// MarketStats - aggregate dashboard numbers
type MarketStats struct {
	Total      int             `json:"total"`
	Drafts     int             `json:"drafts"`
	Published  int             `json:"published"`
	Sold       int             `json:"sold"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// Conversion methods

// ToResponse converts a Blueprint to its API shape, decoding the price
// token. A token that fails to decode yields a null price.
func (b Blueprint) ToResponse() *BlueprintResponse {
	resp := &BlueprintResponse{
		ID:              b.ID,
		Title:           b.Title,
		Architect:       b.Architect,
		Owner:           b.Owner,
		Status:          b.Status,
		EncodedPrice:    b.EncodedPrice,
		PreviewImageURL: b.PreviewImageURL,
		CreatedAt:       b.CreatedAt,
	}

	if price := pricecodec.Decode(b.EncodedPrice); pricecodec.IsValid(price) {
		d := decimal.NewFromFloat(price)
		resp.Price = &d
	}

	return resp
}

// ToEntity converts a CreateBlueprintRequest to a draft Blueprint owned by
// owner. ID and CreatedAt are assigned by the repository on create.
func (req *CreateBlueprintRequest) ToEntity(owner string) *Blueprint {
	return &Blueprint{
		EncodedPrice:    pricecodec.Encode(req.Price.InexactFloat64()),
		Owner:           owner,
		Title:           req.Title,
		Architect:       req.Architect,
		PreviewImageURL: req.PreviewImageURL,
		Status:          StatusDraft,
	}
}
