package reorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omsops/reorder-batch/internal/oms"
)

// Discount code marking replacement orders created by this batch.
const reorderDiscountCode = "RE-ORDER"

// BuildReorderPayload maps a source order and the fulfillable SKU list onto
// the creation payload. Customer, billing and shipping fields are copied
// verbatim; items are filtered to the given SKUs and re-priced from the
// stored price strings.
func BuildReorderPayload(order *oms.Order, skus []string) (*oms.ReorderRequest, error) {
	items, err := buildItems(order, skus)
	if err != nil {
		return nil, err
	}

	shippingPrice, err := parseDecimal(order.ShippingDetails.Price, "shipping price")
	if err != nil {
		return nil, err
	}

	return &oms.ReorderRequest{
		StoreID:                   order.StoreID,
		ParentOrderID:             order.OrderID,
		ParentOrderNumber:         order.OrderNumber,
		CurrencyCode:              order.CurrencyCode,
		DiscountCode:              reorderDiscountCode,
		DiscountCouponDescription: reorderDiscountCode,
		BillingDetails: oms.ReorderBillingDetails{
			Address:   order.BillingDetails.Address,
			FirstName: order.FirstName,
			LastName:  order.LastName,
		},
		CustomerDetails: oms.ReorderCustomerDetails{
			CustomerID: order.CustomerID,
			Email:      order.Email,
			FirstName:  order.FirstName,
			LastName:   order.LastName,
			Phone:      order.CustomerDetails.Phone,
		},
		Items: items,
		ShippingDetails: oms.ReorderShippingDetails{
			Address:   order.ShippingDetails.Address,
			FirstName: order.ShippingDetails.FirstName,
			LastName:  order.ShippingDetails.LastName,
			BasePrice: shippingPrice,
			Price:     shippingPrice,
			Method:    order.ShippingDetails.Method,
			Type:      order.ShippingDetails.Type,
		},
	}, nil
}

func buildItems(order *oms.Order, skus []string) ([]oms.ReorderItem, error) {
	wanted := make(map[string]bool, len(skus))
	for _, sku := range skus {
		wanted[strings.TrimSpace(sku)] = true
	}

	var items []oms.ReorderItem
	for _, item := range order.Items {
		if !wanted[strings.TrimSpace(item.Sku)] {
			continue
		}

		quantity, err := parseDecimal(item.Quantity, fmt.Sprintf("quantity of %s", item.Sku))
		if err != nil {
			return nil, err
		}
		originalPrice, err := parseDecimal(item.OriginalPrice, fmt.Sprintf("original price of %s", item.Sku))
		if err != nil {
			return nil, err
		}
		price, err := parseDecimal(item.Price, fmt.Sprintf("price of %s", item.Sku))
		if err != nil {
			return nil, err
		}
		options, err := oms.ParseProductOptions(item.ProductOptions)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.Sku, err)
		}

		items = append(items, oms.ReorderItem{
			Discount:       0,
			Sku:            item.Sku,
			Quantity:       quantity,
			Image:          item.Image,
			Name:           item.Name,
			ProductType:    item.ProductType,
			Size:           item.Size,
			OriginalPrice:  originalPrice,
			Price:          price,
			SelectedValues: options.AttributesInfo,
		})
	}
	return items, nil
}

func parseDecimal(raw, what string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q: %w", what, raw, err)
	}
	return v, nil
}
