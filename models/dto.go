package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Slug        string `json:"slug" form:"slug" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Category    string `json:"category" form:"category" binding:"required"`
	Benefits    string `json:"benefits" form:"benefits"`
	Price       int    `json:"price" form:"price" binding:"required"`
	InStock     bool   `json:"in_stock" form:"in_stock"`
	Story       string `json:"story" form:"story"`
	Ingredients string `json:"ingredients" form:"ingredients"`
	BrewTempC   int    `json:"brew_temp_c" form:"brew_temp_c"`
	BrewTimeMin int    `json:"brew_time_min" form:"brew_time_min"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Benefits    string `json:"benefits" form:"benefits"`
	Price       int    `json:"price" form:"price"`
	InStock     *bool  `json:"in_stock" form:"in_stock"`
	Story       string `json:"story" form:"story"`
	Ingredients string `json:"ingredients" form:"ingredients"`
	BrewTempC   int    `json:"brew_temp_c" form:"brew_temp_c"`
	BrewTimeMin int    `json:"brew_time_min" form:"brew_time_min"`
}

type AddCartItemRequest struct {
	VariantID   int    `json:"variantId" binding:"required"`
	Qty         int    `json:"qty" binding:"required,min=1"`
	Name        string `json:"name" binding:"required"`
	PriceInr    int    `json:"priceInr" binding:"required,min=1"`
	PackSizeG   int    `json:"packSizeG"`
	ProductSlug string `json:"productSlug"`
}

type UpdateCartQtyRequest struct {
	Qty int `json:"qty"`
}

type CheckoutItemRequest struct {
	VariantID int `json:"variant_id" binding:"required"`
	Qty       int `json:"qty" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Email           string                `json:"email" binding:"required"`
	FullName        string                `json:"full_name" binding:"required"`
	Phone           string                `json:"phone"`
	Address         string                `json:"address" binding:"required"`
	Notes           string                `json:"notes"`
	RazorpayOrderID string                `json:"razorpay_order_id"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreatePaymentOrderRequest struct {
	Amount   int    `json:"amount" binding:"required,min=1"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type FeedbackRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Rating    *int   `json:"rating"`
	ProductID *int   `json:"product_id"`
	OrderID   string `json:"order_id"`
}

type LeadRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"required"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type QRRequest struct {
	Type         string `json:"type" binding:"required,oneof=url product contact wifi"`
	Format       string `json:"format" binding:"omitempty,oneof=png payload"`
	Size         int    `json:"size"`
	URL          string `json:"url"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	SSID         string `json:"ssid"`
	Password     string `json:"password"`
	Security     string `json:"security"`
}
