// Package validation provides input validation for workflow requests.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for request payloads.
//
// # Struct Tag Validation
//
//	type LaunchRequest struct {
//	    ProductName string `json:"product_name" validate:"required,min=2"`
//	    Price       float64 `json:"price" validate:"required,gt=0"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("product_name", req.ProductName).Positive("price", req.Price)
//	err := v.Validate()
package validation
