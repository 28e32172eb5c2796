package view

import (
	"context"

	"github.com/fairyhunter13/product-pages/internal/route"
)

// ProductParams are the path parameters of /products/{productid}.
type ProductParams struct {
	ProductID string `path:"productid"`
}

// ProductDetails renders the detail heading for one product. It waits for
// params once and echoes the id verbatim; a rejection is returned unchanged.
// The text carries no outer padding. For the padded markup
// "<h1> Details about Product {id} </h1>", set Text to " "+h.Text+" ".
func ProductDetails(ctx context.Context, params *route.Deferred[ProductParams]) (Heading, error) {
	p, err := params.Await(ctx)
	if err != nil {
		return Heading{}, err
	}
	return Heading{Level: 1, Text: "Details about Product " + p.ProductID}, nil
}
