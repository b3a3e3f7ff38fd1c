package oms

import "strings"

// Order is the record returned by the order management service. Numeric
// fields arrive as strings and are only coerced when building a re-order
// payload.
type Order struct {
	OrderID          string          `json:"OrderId"`
	OrderNumber      string          `json:"OrderNumber"`
	StoreID          string          `json:"StoreId"`
	CurrencyCode     string          `json:"CurrencyCode"`
	CustomerID       string          `json:"CustomerId"`
	Email            string          `json:"Email"`
	FirstName        string          `json:"FirstName"`
	LastName         string          `json:"LastName"`
	ShippingRefunded string          `json:"ShippingRefunded"`
	CustomerDetails  CustomerDetails `json:"CustomerDetails"`
	BillingDetails   BillingDetails  `json:"BillingDetails"`
	ShippingDetails  ShippingDetails `json:"ShippingDetails"`
	Items            []OrderItem     `json:"Items"`
}

type Address struct {
	City        string `json:"City"`
	CountryCode string `json:"CountryCode"`
	Postcode    string `json:"Postcode"`
	Region      string `json:"Region"`
	Street      string `json:"Street"`
}

type CustomerDetails struct {
	Phone string `json:"Phone"`
}

type BillingDetails struct {
	Address Address `json:"Address"`
}

type ShippingDetails struct {
	Address   Address `json:"Address"`
	FirstName string  `json:"FirstName"`
	LastName  string  `json:"LastName"`
	Price     string  `json:"Price"`
	Method    string  `json:"Method"`
	Type      string  `json:"Type"`
}

type OrderItem struct {
	Sku            string `json:"Sku"`
	Quantity       string `json:"Quantity"`
	Price          string `json:"Price"`
	OriginalPrice  string `json:"OriginalPrice"`
	Image          string `json:"Image"`
	Name           string `json:"Name"`
	ProductType    string `json:"ProductType"`
	Size           string `json:"Size"`
	ProductOptions string `json:"ProductOptions"`
}

// HasSku reports whether the order contains a line item for the SKU.
// Comparison is trimmed and case sensitive.
func (o *Order) HasSku(sku string) bool {
	sku = strings.TrimSpace(sku)
	for _, item := range o.Items {
		if strings.TrimSpace(item.Sku) == sku {
			return true
		}
	}
	return false
}

// HasSkus reports whether every SKU appears in the order's line items.
func (o *Order) HasSkus(skus []string) bool {
	for _, sku := range skus {
		if !o.HasSku(sku) {
			return false
		}
	}
	return true
}

// ReorderRequest is the payload accepted by the re-order creation endpoint.
type ReorderRequest struct {
	StoreID                   string                 `json:"StoreId"`
	ParentOrderID             string                 `json:"ParentOrderId"`
	ParentOrderNumber         string                 `json:"ParentOrderNumber"`
	CurrencyCode              string                 `json:"CurrencyCode"`
	DiscountCode              string                 `json:"DiscountCode"`
	DiscountCouponDescription string                 `json:"DiscountCouponDescription"`
	BillingDetails            ReorderBillingDetails  `json:"BillingDetails"`
	CustomerDetails           ReorderCustomerDetails `json:"CustomerDetails"`
	Items                     []ReorderItem          `json:"Items"`
	ShippingDetails           ReorderShippingDetails `json:"ShippingDetails"`
}

type ReorderBillingDetails struct {
	Address   Address `json:"Address"`
	FirstName string  `json:"FirstName"`
	LastName  string  `json:"LastName"`
}

type ReorderCustomerDetails struct {
	CustomerID string `json:"CustomerId"`
	Email      string `json:"Email"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	Phone      string `json:"Phone"`
}

type ReorderShippingDetails struct {
	Address   Address `json:"Address"`
	FirstName string  `json:"FirstName"`
	LastName  string  `json:"LastName"`
	BasePrice float64 `json:"BasePrice"`
	Price     float64 `json:"Price"`
	Method    string  `json:"Method"`
	Type      string  `json:"Type"`
}

type ReorderItem struct {
	Discount       float64         `json:"Discount"`
	Sku            string          `json:"Sku"`
	Quantity       float64         `json:"Quantity"`
	Image          string          `json:"Image"`
	Name           string          `json:"Name"`
	ProductType    string          `json:"ProductType"`
	Size           string          `json:"Size"`
	OriginalPrice  float64         `json:"OriginalPrice"`
	Price          float64         `json:"Price"`
	SelectedValues []AttributeInfo `json:"SelectedValues"`
}

type ReorderResponse struct {
	OrderNumber string `json:"OrderNumber"`
}
