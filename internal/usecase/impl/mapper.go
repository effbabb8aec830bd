package impl

import (
	"mart/internal/domain/entity"
	"mart/internal/usecase"
)

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	return &usecase.ProductOutput{
		ID:       product.ID(),
		Name:     product.Name(),
		ImageURL: product.ImageURL(),
		Price:    product.Price().String(),
	}
}

func toCartOutput(cart *entity.Cart) *usecase.CartOutput {
	items := cart.Items()
	output := &usecase.CartOutput{
		CartID: cart.ID(),
		Items:  make([]usecase.CartItemOutput, 0, len(items)),
	}

	var total entity.Price
	for _, item := range items {
		price := item.Product.Price()
		// Cart counts are always positive.
		total = total.Add(price.Mul(uint(item.Count)))
		output.Items = append(output.Items, usecase.CartItemOutput{
			ProductID: item.Product.ID(),
			Name:      item.Product.Name(),
			ImageURL:  item.Product.ImageURL(),
			Price:     price.String(),
			Count:     item.Count,
		})
	}
	output.TotalPrice = total.String()

	return output
}

func toOrderDetailOutput(order *entity.Order) *usecase.OrderDetailOutput {
	lines := order.Lines()
	output := &usecase.OrderDetailOutput{
		OrderID:    order.ID(),
		Items:      make([]usecase.OrderItemOutput, 0, len(lines)),
		TotalPrice: order.TotalPrice(),
	}

	for _, line := range lines {
		output.Items = append(output.Items, usecase.OrderItemOutput{
			ProductID: line.Product.ID(),
			Name:      line.Product.Name(),
			ImageURL:  line.Product.ImageURL(),
			Price:     line.Product.Price().String(),
			Count:     line.Count,
		})
	}

	return output
}
